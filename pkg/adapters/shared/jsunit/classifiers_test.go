package jsunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

func classify(t *testing.T, c jsparse.Classifier, line string) ir.Node {
	t.Helper()
	m := c.Pattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return c.Build(m, ir.NewBase(1, 1, line))
}

func TestExpectAssertion(t *testing.T) {
	c := ExpectAssertion()

	tests := []struct {
		name    string
		line    string
		matcher string
		subject string
		want    string
		negated bool
	}{
		{
			name:    "jest matcher",
			line:    `expect(result).toBe(42);`,
			matcher: "toBe",
			subject: "result",
			want:    "42",
		},
		{
			name:    "negated",
			line:    `expect(value).not.toEqual({ a: 1 });`,
			matcher: "toEqual",
			subject: "value",
			want:    "{ a: 1 }",
			negated: true,
		},
		{
			name:    "awaited",
			line:    `await expect(promise).resolves.toBe(1);`,
			matcher: "resolves.toBe",
			subject: "promise",
			want:    "1",
		},
		{
			name:    "chai equal",
			line:    `expect(user.name).to.equal('alice');`,
			matcher: "equal",
			subject: "user.name",
			want:    "'alice'",
		},
		{
			name:    "chai negation",
			line:    `expect(count).to.not.equal(0);`,
			matcher: "equal",
			subject: "count",
			want:    "0",
			negated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := classify(t, c, tt.line)
			require.NotNil(t, node)
			a, ok := node.(*ir.Assertion)
			require.True(t, ok)
			assert.Equal(t, tt.matcher, a.Matcher)
			assert.Equal(t, tt.subject, a.Subject)
			assert.Equal(t, tt.want, a.Expected)
			assert.Equal(t, tt.negated, a.Negated)
		})
	}
}

func TestExpectAssertionIgnoresNonAssertions(t *testing.T) {
	c := ExpectAssertion()
	for _, line := range []string{
		`const x = compute();`,
		`// expect(x).toBe(1)`,
		`cy.get('#btn').click();`,
	} {
		assert.Nil(t, classify(t, c, line), "line %q", line)
	}
}

func TestChainAssertion(t *testing.T) {
	c := ChainAssertion()

	node := classify(t, c, `expect(value).to.be.null;`)
	require.NotNil(t, node)
	a, ok := node.(*ir.Assertion)
	require.True(t, ok)
	assert.Equal(t, "null", a.Matcher)
	assert.Equal(t, "value", a.Subject)
	assert.Empty(t, a.Expected)

	node = classify(t, c, `expect(spy).to.have.been.called;`)
	require.NotNil(t, node)
	mc, ok := node.(*ir.MockCall)
	require.True(t, ok)
	assert.Equal(t, MockAssertion, mc.Action)
	assert.Equal(t, "spy", mc.Target)
}

func TestMockClassifier(t *testing.T) {
	c := MockClassifier("jest", "vi")

	tests := []struct {
		line   string
		action string
		target string
	}{
		{`const fn = jest.fn();`, MockCreate, ""},
		{`jest.spyOn(console, 'log');`, MockSpyOnMethod, "console, 'log'"},
		{`vi.mock('./api');`, MockModule, "'./api'"},
		{`jest.useFakeTimers();`, MockFakeTimers, ""},
		{`jest.restoreAllMocks();`, MockRestore, ""},
	}

	for _, tt := range tests {
		node := classify(t, c, tt.line)
		require.NotNil(t, node, "line %q", tt.line)
		mc, ok := node.(*ir.MockCall)
		require.True(t, ok)
		assert.Equal(t, tt.action, mc.Action, "line %q", tt.line)
		if tt.target != "" {
			assert.Equal(t, tt.target, mc.Target)
		}
	}

	assert.Nil(t, classify(t, c, `sinon.stub();`), "namespace not registered")
}

func TestSpyOnClassifier(t *testing.T) {
	c := SpyOnClassifier()

	node := classify(t, c, `spyOn(service, 'fetch').and.returnValue(data);`)
	require.NotNil(t, node)
	mc, ok := node.(*ir.MockCall)
	require.True(t, ok)
	assert.Equal(t, MockSpyOnMethod, mc.Action)

	assert.Nil(t, classify(t, c, `jest.spyOn(service, 'fetch');`))
}
