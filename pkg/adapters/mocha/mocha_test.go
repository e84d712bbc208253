package mocha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const mochaSample = `const { expect } = require('chai');
const sinon = require('sinon');

describe('cart', () => {
  beforeEach(() => {
    sinon.restore();
  });

  it('totals items', () => {
    expect(cart.total()).to.equal(30);
    expect(cart.items).to.have.lengthOf(2);
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(mochaSample), 60)

	jestSrc := "jest.mock('./api');\ntest('x', () => { expect(1).toBe(1); });\n"
	assert.Less(t, a.Detect(jestSrc), 30)
}

func TestParseChaiAssertions(t *testing.T) {
	a := New()
	file := a.Parse(mochaSample)

	suite, ok := file.Body[0].(*ir.TestSuite)
	require.True(t, ok)
	require.Len(t, suite.Tests, 1)

	tc, ok := suite.Tests[0].(*ir.TestCase)
	require.True(t, ok)
	require.Len(t, tc.Body, 2)

	first, ok := tc.Body[0].(*ir.Assertion)
	require.True(t, ok)
	assert.Equal(t, "equal", first.Matcher)
	assert.Equal(t, "cart.total()", first.Subject)
}

func TestEmitFromJest(t *testing.T) {
	a := New()
	src := `describe('spy', () => {
  beforeAll(() => {
    jest.useFakeTimers();
  });

  test('calls back', () => {
    const fn = jest.fn();
    fn();
    expect(fn).toHaveBeenCalled();
    expect(result).toEqual({ ok: true });
  });
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkJest

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, "const fn = sinon.stub();")
	assert.Contains(t, res.Output, ".to.have.been.called;")
	assert.Contains(t, res.Output, ".to.deep.equal({ ok: true });")
	assert.Contains(t, res.Output, "before(")
	assert.Contains(t, res.Output, "it('calls back'")
	assert.Contains(t, res.Output, "require('chai')")
	assert.Contains(t, res.Output, "require('sinon')")
}

func TestEmitInjectsImportsOnce(t *testing.T) {
	a := New()
	src := "test('x', () => { expect(1).toBe(1); });\n"
	file := a.Parse(src)
	file.Framework = adapter.FrameworkJest

	first := a.Emit(file, src)
	second := a.Emit(a.Parse(first.Output), first.Output)

	assert.Equal(t, 1, countOccurrences(second.Output, "require('chai')"))
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
