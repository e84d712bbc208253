package webdriverio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
)

const wdioSample = `describe('search', () => {
  it('finds results', async () => {
    await browser.url('/search');
    await $('#query').setValue('golang');
    await expect($('#results')).toBeDisplayed();
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(wdioSample), 60)

	cySrc := "it('x', () => { cy.visit('/'); cy.get('#a').click(); });\n"
	assert.Less(t, a.Detect(cySrc), 30)
}

func TestEmitFromCypress(t *testing.T) {
	a := New()
	src := `describe('search', () => {
  it('finds results', () => {
    cy.visit('/search');
    cy.get('#query').type('golang');
    cy.get('#results').should('be.visible');
  });
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkCypress

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, `await browser.url('/search');`)
	assert.Contains(t, res.Output, `await $('#query').setValue('golang');`)
	assert.Contains(t, res.Output, `await expect($('#results')).toBeDisplayed();`)
}

func TestEmitFromPlaywright(t *testing.T) {
	a := New()
	src := `test.describe('search', () => {
  test('finds results', async ({ page }) => {
    await page.goto('/search');
    await page.locator('#query').fill('golang');
    await expect(page.locator('#results')).toBeVisible();
  });
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkPlaywright

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, `browser.url('/search');`)
	assert.Contains(t, res.Output, `$('#query').setValue('golang');`)
	assert.Contains(t, res.Output, `expect($('#results')).toBeDisplayed();`)
	assert.Contains(t, res.Output, `describe('search', () => {`)
	assert.Contains(t, res.Output, `it('finds results', async () => {`)
}
