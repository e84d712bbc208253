package vitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const vitestSample = `import { describe, it, expect, vi } from 'vitest';

describe('api', () => {
  it('fetches', async () => {
    vi.mock('./client');
    const data = await fetchUsers();
    expect(data).toEqual([]);
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(vitestSample), 60)

	jestSrc := "jest.mock('./client');\ntest('x', () => { expect(1).toBe(1); });\n"
	assert.Less(t, a.Detect(jestSrc), 30)
}

func TestParseMockCalls(t *testing.T) {
	a := New()
	file := a.Parse(vitestSample)

	var mocks []*ir.MockCall
	ir.Walk(file, func(n ir.Node) bool {
		if m, ok := n.(*ir.MockCall); ok {
			mocks = append(mocks, m)
		}
		return true
	})

	require.Len(t, mocks, 1)
	assert.Equal(t, "moduleMock", mocks[0].Action)
}

func TestEmitFromJest(t *testing.T) {
	a := New()
	src := `test('mocks', () => {
  const fn = jest.fn();
  jest.useFakeTimers();
  expect(fn).toHaveBeenCalled();
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkJest

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, "vi.fn()")
	assert.Contains(t, res.Output, "vi.useFakeTimers()")
	assert.Contains(t, res.Output, "from 'vitest';")
	assert.True(t, res.Supported)
}

func TestEmitUnknownJestCallDegrades(t *testing.T) {
	a := New()
	src := "test('x', () => {\n  jest.genMockFromModule('./m');\n});\n"
	file := a.Parse(src)
	file.Framework = adapter.FrameworkJest

	res := a.Emit(file, src)

	assert.False(t, res.Supported)
	require.NotEmpty(t, res.Todos)
	assert.Contains(t, res.Todos[0], "jest.genMockFromModule")
}
