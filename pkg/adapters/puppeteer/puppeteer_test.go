package puppeteer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
)

const puppeteerSample = `const puppeteer = require('puppeteer');

describe('home', () => {
  it('loads', async () => {
    const browser = await puppeteer.launch();
    const page = await browser.newPage();
    await page.goto('https://example.com');
    await page.waitForSelector('#main');
  });
});
`

func TestDetect(t *testing.T) {
	a := New()

	assert.GreaterOrEqual(t, a.Detect(puppeteerSample), 60)

	pw := "import { test, expect } from '@playwright/test';\ntest('x', async ({ page }) => { await page.goto('/'); });\n"
	assert.Less(t, a.Detect(pw), 30)
}

func TestEmitFromPlaywright(t *testing.T) {
	a := New()
	src := `import { test, expect } from '@playwright/test';

test('loads', async ({ page }) => {
  await page.goto('https://example.com');
  await page.locator('#main').waitFor();
  await page.locator('#input').fill('hello');
});
`
	file := a.Parse(src)
	file.Framework = adapter.FrameworkPlaywright

	res := a.Emit(file, src)

	assert.Contains(t, res.Output, `await page.waitForSelector('#main');`)
	assert.Contains(t, res.Output, `await page.type('#input', 'hello');`)
	assert.Contains(t, res.Output, `it('loads', async () => {`)
	assert.Contains(t, res.Output, `const puppeteer = require('puppeteer');`)
	assert.NotContains(t, res.Output, "@playwright/test")
}
