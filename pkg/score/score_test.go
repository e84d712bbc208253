package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
	"github.com/hamlet-dev/hamlet/pkg/todo"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		confidence int
		want       Bucket
	}{
		{100, BucketHigh},
		{90, BucketHigh},
		{89, BucketMedium},
		{70, BucketMedium},
		{69, BucketLow},
		{0, BucketLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.confidence), "confidence %d", tt.confidence)
	}
}

func fileWith(nodes ...ir.Node) *ir.TestFile {
	test := &ir.TestCase{Base: ir.NewBase(2, 1, "it('x', () => {"), Name: "x", Body: nodes}
	return &ir.TestFile{
		Base: ir.NewBase(1, 1, ""),
		Body: []ir.Node{test},
	}
}

func TestFileFullMatch(t *testing.T) {
	file := fileWith(
		&ir.Assertion{Base: ir.NewBase(3, 1, "cy.get('#a').should('be.visible')"), Matcher: "be.visible"},
	)
	output := "test('x', async ({ page }) => {\n  await expect(page.locator('#a')).toBeVisible();\n});\n"

	assert.Equal(t, 100, File(file, output, adapter.FrameworkPlaywright))
}

func TestFilePartialMatch(t *testing.T) {
	file := fileWith(
		&ir.Assertion{Base: ir.NewBase(3, 1, "expect(a).toBe(1)"), Matcher: "toBe"},
		&ir.Navigation{Base: ir.NewBase(4, 1, "cy.visit('/')"), Action: ir.NavVisit},
	)
	// Test case + assertion realized, navigation missing: 2 of 3.
	output := "test('x', async () => {\n  await expect(a).toBe(1);\n});\n"

	assert.Equal(t, 66, File(file, output, adapter.FrameworkPlaywright))
}

func TestFileZeroNodesScores100(t *testing.T) {
	file := &ir.TestFile{Base: ir.NewBase(1, 1, "")}
	assert.Equal(t, 100, File(file, "", adapter.FrameworkJest))

	// Comment-only files have no scorable nodes either.
	commentFile := &ir.TestFile{
		Base: ir.NewBase(1, 1, ""),
		Body: []ir.Node{&ir.Comment{Base: ir.NewBase(1, 1, "// hi"), Text: "// hi"}},
	}
	assert.Equal(t, 100, File(commentFile, "// hi\n", adapter.FrameworkJest))
}

func TestFileBoundedForAnyInput(t *testing.T) {
	file := fileWith(
		&ir.Assertion{Base: ir.NewBase(3, 1, "expect(a).toBe(1)")},
	)

	for _, output := range []string{"", "garbage", "expect(\nexpect(\nexpect("} {
		got := File(file, output, adapter.FrameworkJest)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestFileTodoLinesDoNotCount(t *testing.T) {
	original := "cy.task('seedDb')"
	file := fileWith(
		&ir.MockCall{Base: ir.NewBase(3, 1, original), Action: "task"},
	)
	output := "test('x', async () => {\n" +
		todo.Format(todo.Todo{ID: "CY-TASK", Description: "unsupported", Original: original}) +
		"\n});\n"

	// The mock call survives only inside the marker: test case matches,
	// mock call does not.
	assert.Equal(t, 50, File(file, output, adapter.FrameworkPlaywright))
}

func TestMatchesBaselinePerKind(t *testing.T) {
	b := BaselineFor(adapter.FrameworkMocha)

	assertion := &ir.Assertion{}
	assert.True(t, b.Matches("expect(user.name).to.equal('ann');", assertion))
	assert.True(t, b.Matches("expect(fn).to.have.been.called;", assertion))
	assert.False(t, b.Matches("// just a comment", assertion))
	assert.False(t, b.Matches("expect(x).toBe(1);", assertion))

	mock := &ir.MockCall{}
	assert.True(t, b.Matches("const s = sinon.stub();", mock))
	assert.False(t, b.Matches("const s = jest.fn();", mock))
}

func TestBaselineForUnknownFallsBack(t *testing.T) {
	assert.NotNil(t, BaselineFor("no-such-framework"))
}

func TestScorableKinds(t *testing.T) {
	b := BaselineFor(adapter.FrameworkJest)

	assert.True(t, b.Scorable(&ir.Assertion{}))
	assert.True(t, b.Scorable(&ir.TestCase{}))
	assert.False(t, b.Scorable(&ir.RawCode{}))
	assert.False(t, b.Scorable(&ir.Comment{}))
	assert.False(t, b.Scorable(&ir.Import{}))
}
