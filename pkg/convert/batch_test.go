package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/score"
)

const cypressSample = `describe('login', () => {
  it('signs in', () => {
    cy.visit('/login');
    cy.get('#submit').should('be.visible');
  });
});
`

const jestSample = `describe('math', () => {
  it('adds', () => {
    const spy = jest.fn();
    expect(add(1, 2)).toBe(3);
  });
});
`

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func TestNewBatchValidation(t *testing.T) {
	_, err := NewBatch("nightwatch")
	assert.ErrorIs(t, err, ErrUnknownFramework)

	_, err = NewBatch(adapter.FrameworkPlaywright, WithFramework(adapter.FrameworkPlaywright))
	assert.ErrorIs(t, err, ErrSameFramework)

	_, err = NewBatch(adapter.FrameworkPlaywright, WithFramework(adapter.FrameworkJest))
	assert.ErrorIs(t, err, ErrParadigmMismatch)
}

func TestBatchRun(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"cypress/e2e/login.cy.js":      cypressSample,
		"src/__tests__/math.test.js":   jestSample,
		"node_modules/lib/dep.test.js": jestSample,
		"README.md":                    "# readme\n",
	})

	batch, err := NewBatch(adapter.FrameworkPlaywright)
	require.NoError(t, err)

	result, err := batch.Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.FilesScanned)
	require.Len(t, result.Files, 1)

	report := result.Files[0]
	assert.Equal(t, "cypress/e2e/login.cy.js", report.Path)
	assert.Equal(t, adapter.FrameworkCypress, report.Framework)
	assert.Equal(t, StatusConverted, report.Status)
	assert.GreaterOrEqual(t, report.Confidence, 90)

	assert.Equal(t, 1, result.Summary.Converted)
	assert.Equal(t, 1, result.Summary.Skipped)
	assert.Equal(t, 0, result.Summary.Failed)
	assert.Equal(t, 1, result.Summary.Buckets[score.BucketHigh])
	assert.NotEmpty(t, result.Summary.RunID)
	assert.Equal(t, adapter.FrameworkPlaywright, result.Summary.Target)

	// The unit-paradigm jest file cannot target an e2e framework; it is
	// skipped with a classify error, not failed.
	require.NotEmpty(t, result.Errors)
	found := false
	for _, e := range result.Errors {
		if e.Phase == "classify" && e.Path == "src/__tests__/math.test.js" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBatchWritesOutput(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()
	writeTree(t, root, map[string]string{
		"e2e/login.cy.js": cypressSample,
	})

	batch, err := NewBatch(adapter.FrameworkPlaywright, WithOutputDir(outDir))
	require.NoError(t, err)

	result, err := batch.Run(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	written, err := os.ReadFile(filepath.Join(outDir, "e2e", "login.cy.js"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "await page.goto('/login');")
	assert.Contains(t, string(written), "import { test, expect } from '@playwright/test';")
}

func TestBatchPatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"e2e/login.cy.js":   cypressSample,
		"unit/math.test.js": jestSample,
	})

	batch, err := NewBatch(adapter.FrameworkPlaywright, WithPatterns([]string{"**/*.cy.js"}))
	require.NoError(t, err)

	result, err := batch.Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.FilesScanned)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "e2e/login.cy.js", result.Files[0].Path)
}

func TestBatchPreTaggedFramework(t *testing.T) {
	root := t.TempDir()

	// Too few markers for detection to classify on its own.
	writeTree(t, root, map[string]string{
		"specs/nav.spec.js": "it('goes home', () => {\n  cy.visit('/');\n});\n",
	})

	batch, err := NewBatch(adapter.FrameworkPlaywright, WithFramework(adapter.FrameworkCypress))
	require.NoError(t, err)

	result, err := batch.Run(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, adapter.FrameworkCypress, result.Files[0].Framework)
}

func TestBatchSkipsTargetFrameworkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"e2e/nav.spec.ts": `import { test, expect } from '@playwright/test';

test('navigates', async ({ page }) => {
  await page.goto('/');
});
`,
	})

	batch, err := NewBatch(adapter.FrameworkPlaywright)
	require.NoError(t, err)

	result, err := batch.Run(context.Background(), root)
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 1, result.Summary.Skipped)
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := NewBatch(adapter.FrameworkPlaywright)
	require.NoError(t, err)

	_, err = batch.Run(ctx, t.TempDir())
	assert.ErrorIs(t, err, ErrBatchCancelled)
}

func TestRunConvenience(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"e2e/login.cy.js": cypressSample,
	})

	result, err := Run(context.Background(), root, adapter.FrameworkPlaywright)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Converted)
}
