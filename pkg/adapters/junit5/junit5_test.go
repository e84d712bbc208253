package junit5

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
	"github.com/hamlet-dev/hamlet/pkg/todo"
)

const junitSample = `package com.example;

import org.junit.jupiter.api.Test;
import org.junit.jupiter.api.BeforeEach;
import org.junit.jupiter.api.DisplayName;
import static org.junit.jupiter.api.Assertions.*;

class AccountServiceTest {

    @BeforeEach
    void setUp() {
        service = new AccountService();
    }

    @Test
    @DisplayName("opens an account")
    void opensAccount() {
        Account acct = service.open("alice");
        assertEquals("alice", acct.owner());
        assertTrue(acct.active());
    }

    @Disabled
    @Test
    void closesAccount() {
    }
}
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(junitSample), 60)

	junit4 := "import org.junit.Test;\n\npublic class LegacyTest {\n    @Test\n    public void works() {}\n}\n"
	assert.Less(t, a.Detect(junit4), 30)

	assert.Zero(t, a.Detect("describe('x', () => { it('y', () => {}); });\n"))
}

func TestParse(t *testing.T) {
	a := New()
	file := a.Parse(junitSample)

	assert.Equal(t, ir.LanguageJava, file.Language)
	require.Len(t, file.Imports, 4)
	assert.Equal(t, "org.junit.jupiter.api.Test", file.Imports[0].Module)

	var suite *ir.TestSuite
	for _, n := range file.Body {
		if s, ok := n.(*ir.TestSuite); ok {
			suite = s
		}
	}
	require.NotNil(t, suite)
	assert.Equal(t, "AccountServiceTest", suite.Name)
	require.Len(t, suite.Hooks, 1)
	assert.Equal(t, ir.HookBeforeEach, suite.Hooks[0].Type)

	require.Len(t, suite.Tests, 2)
	first, ok := suite.Tests[0].(*ir.TestCase)
	require.True(t, ok)
	assert.Equal(t, "opens an account", first.Name, "@DisplayName wins over the method name")

	asserts := 0
	for _, n := range first.Body {
		if _, ok := n.(*ir.Assertion); ok {
			asserts++
		}
	}
	assert.Equal(t, 2, asserts)

	second, ok := suite.Tests[1].(*ir.TestCase)
	require.True(t, ok)
	assert.True(t, ir.HasModifier(second.Modifiers, ir.ModifierSkip))
}

func TestEmitSkeleton(t *testing.T) {
	a := New()
	src := `describe('login flow', () => {
  it('signs in with valid creds', () => {
    const user = login('alice', 'pw');
    expect(user.name).toBe('alice');
  });

  it.skip('rejects bad creds', () => {});
});
`
	file := jsTree()

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, "import org.junit.jupiter.api.*;")
	assert.Contains(t, res.Output, "class LoginFlowTest {")
	assert.Contains(t, res.Output, "void signsInWithValidCreds() {")
	assert.Contains(t, res.Output, `@DisplayName("signs in with valid creds")`)
	assert.Contains(t, res.Output, "@Disabled")
	assert.Contains(t, res.Output, todo.Marker)
	assert.Contains(t, res.Output, "// expect(user.name).toBe('alice');")
	assert.False(t, res.Supported)
	require.NotEmpty(t, res.Todos)

	// Comment lines carry preserved JS fragments with their own braces;
	// only actual Java code must balance.
	opens, closes := 0, 0
	for _, line := range strings.Split(res.Output, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		opens += strings.Count(line, "{")
		closes += strings.Count(line, "}")
	}
	assert.Equal(t, opens, closes, "emitted skeleton must be brace balanced")
}

func jsTree() *ir.TestFile {
	suite := &ir.TestSuite{Base: ir.NewBase(1, 1, "describe('login flow', () => {"), Name: "login flow"}
	suite.Tests = []ir.Node{
		&ir.TestCase{
			Base: ir.NewBase(2, 3, "it('signs in with valid creds', () => {"),
			Name: "signs in with valid creds",
			Body: []ir.Node{
				&ir.RawCode{Base: ir.NewBase(3, 5, "const user = login('alice', 'pw');"), Code: "const user = login('alice', 'pw');"},
				&ir.Assertion{Base: ir.NewBase(4, 5, "expect(user.name).toBe('alice');"), Matcher: "toBe", Subject: "user.name", Expected: "'alice'"},
			},
		},
		&ir.TestCase{
			Base:      ir.NewBase(7, 3, "it.skip('rejects bad creds', () => {});"),
			Name:      "rejects bad creds",
			Modifiers: []ir.Modifier{ir.ModifierSkip},
		},
	}
	return &ir.TestFile{
		Base:      ir.NewBase(1, 1, ""),
		Framework: adapter.FrameworkJest,
		Language:  ir.LanguageJavaScript,
		Body:      []ir.Node{suite},
	}
}
