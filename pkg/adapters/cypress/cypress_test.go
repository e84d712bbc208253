package cypress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const cypressSample = `describe('checkout', () => {
  beforeEach(() => {
    cy.visit('/cart');
  });

  it('pays', () => {
    cy.get('#pay').click();
    cy.get('#receipt').should('be.visible');
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(cypressSample), 60)

	pw := "import { test, expect } from '@playwright/test';\ntest('x', async ({ page }) => {});\n"
	assert.Less(t, a.Detect(pw), 30)
}

func TestParseShouldChain(t *testing.T) {
	a := New()
	file := a.Parse(cypressSample)

	var asserts []*ir.Assertion
	var navs []*ir.Navigation
	ir.Walk(file, func(n ir.Node) bool {
		switch node := n.(type) {
		case *ir.Assertion:
			asserts = append(asserts, node)
		case *ir.Navigation:
			navs = append(navs, node)
		}
		return true
	})

	require.Len(t, asserts, 1)
	assert.Equal(t, "be.visible", asserts[0].Matcher)
	require.Len(t, navs, 1)
	assert.Equal(t, ir.NavVisit, navs[0].Action)
	assert.Equal(t, "/cart", navs[0].URL)
}

func TestEmitFromPlaywright(t *testing.T) {
	a := New()
	src := `import { test, expect } from '@playwright/test';

test.describe('checkout', () => {
  test.beforeEach(async ({ page }) => {
    await page.goto('/cart');
  });

  test('pays', async ({ page }) => {
    await page.locator('#pay').click();
    await expect(page.locator('#receipt')).toBeVisible();
  });
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkPlaywright

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, `cy.visit('/cart');`)
	assert.Contains(t, res.Output, `cy.get('#receipt').should('be.visible');`)
	assert.Contains(t, res.Output, `describe('checkout', () => {`)
	assert.Contains(t, res.Output, `it('pays', () => {`)
	assert.Contains(t, res.Output, `beforeEach(() => {`)
	assert.NotContains(t, res.Output, "await ")
	assert.NotContains(t, res.Output, "@playwright/test")
}

func TestEmitStripsAsyncMarkers(t *testing.T) {
	a := New()
	src := "test('x', async ({ page }) => {\n  await page.goto('/');\n});\n"
	file := a.Parse(src)
	file.Framework = adapter.FrameworkPlaywright

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, "it('x', () => {")
	assert.Contains(t, res.Output, "cy.visit('/');")
}
