package selenium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
)

const seleniumSample = `const { Builder, By, until } = require('selenium-webdriver');

describe('profile', () => {
  it('opens', async () => {
    const driver = await new Builder().forBrowser('chrome').build();
    await driver.get('https://example.com/profile');
    await driver.findElement(By.css('#edit')).click();
    await driver.quit();
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(seleniumSample), 60)
	assert.Less(t, a.Detect("it('x', () => { cy.visit('/'); });\n"), 30)
}

func TestEmitFromPlaywright(t *testing.T) {
	a := New()
	src := `test('opens', async ({ page }) => {
  await page.goto('https://example.com/profile');
  await page.locator('#edit').click();
  await expect(page.locator('#form')).toBeVisible();
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkPlaywright

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, `await driver.get('https://example.com/profile');`)
	assert.Contains(t, res.Output, `await driver.findElement(By.css('#edit')).click();`)
	assert.Contains(t, res.Output, `it('opens', async () => {`)
	assert.Contains(t, res.Output, `require('selenium-webdriver');`)

	// Playwright's expect has no selenium equivalent.
	assert.False(t, res.Supported)
	require.NotEmpty(t, res.Todos)
}
