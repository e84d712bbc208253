package playwright

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
	"github.com/hamlet-dev/hamlet/pkg/todo"
)

const playwrightSample = `import { test, expect } from '@playwright/test';

test.describe('login', () => {
  test.beforeEach(async ({ page }) => {
    await page.goto('/login');
  });

  test('signs in', async ({ page }) => {
    await page.locator('#user').fill('alice');
    await expect(page.locator('#welcome')).toBeVisible();
  });
});
`

const cypressSample = `describe('login', () => {
  before(() => {
    cy.task('seedDb');
  });

  beforeEach(() => {
    cy.visit('/login');
  });

  it('signs in', () => {
    cy.get('#user').type('alice');
    cy.get('#submit').click();
    cy.get('#btn').should('be.visible');
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(playwrightSample), 60)
	assert.Less(t, a.Detect(cypressSample), 30)
	assert.Zero(t, a.Detect(""))
}

func TestParse(t *testing.T) {
	a := New()
	file := a.Parse(playwrightSample)

	assert.Equal(t, frameworkName, file.Framework)
	require.NotEmpty(t, file.Imports)
	assert.Equal(t, "@playwright/test", file.Imports[0].Module)

	navs := 0
	ir.Walk(file, func(n ir.Node) bool {
		if _, ok := n.(*ir.Navigation); ok {
			navs++
		}
		return true
	})
	assert.Equal(t, 1, navs)
}

func TestEmitFromCypress(t *testing.T) {
	a := New()
	src := cypressSample
	file := a.Parse(src)
	file.Framework = adapter.FrameworkCypress

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, `await expect(page.locator('#btn')).toBeVisible();`)
	assert.Contains(t, res.Output, `await page.goto('/login');`)
	assert.Contains(t, res.Output, `await page.locator('#user').fill('alice');`)
	assert.Contains(t, res.Output, `test.describe('login', () => {`)
	assert.Contains(t, res.Output, `test('signs in', async ({ page }) => {`)
	assert.Contains(t, res.Output, `test.beforeEach(async ({ page }) => {`)
	assert.Contains(t, res.Output, `import { test, expect } from '@playwright/test';`)
}

func TestEmitUnconvertibleCommandBecomesMarker(t *testing.T) {
	a := New()
	src := cypressSample
	file := a.Parse(src)
	file.Framework = adapter.FrameworkCypress

	res := a.Emit(file, src)

	assert.False(t, res.Supported)
	require.NotEmpty(t, res.Todos)
	assert.Contains(t, res.Output, todo.Marker)
	assert.Contains(t, res.Output, `// Original: cy.task('seedDb');`, "unconvertible call must survive verbatim")
	assert.Contains(t, res.Todos[0], "cy.task")
}

func TestEmitMochaHookGainsFixtureSignature(t *testing.T) {
	a := New()
	src := "before(() => {\n  setup();\n});\n"
	file := a.Parse(src)
	file.Framework = adapter.FrameworkCypress

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, "test.beforeAll(async ({ page }) => {")
}

func TestEmitImportInjectionIsIdempotent(t *testing.T) {
	a := New()
	src := cypressSample
	file := a.Parse(src)
	file.Framework = adapter.FrameworkCypress

	first := a.Emit(file, src)
	again := a.Emit(file, first.Output)

	assert.Equal(t, 1, strings.Count(again.Output, "from '@playwright/test'"))
}

func TestMetadata(t *testing.T) {
	md := New().Metadata()
	assert.Equal(t, adapter.ParadigmE2E, md.Paradigm)
	assert.NotEmpty(t, md.Imports.Modules)
}
