package e2e

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
)

// AddAwait returns a per-line post-processor that prefixes statements
// starting with one of the given call prefixes with await, unless the
// line already has one.
func AddAwait(prefixes ...string) func(string) string {
	return func(line string) string {
		trimmed := strings.TrimSpace(line)
		for _, p := range prefixes {
			if !strings.HasPrefix(trimmed, p) {
				continue
			}
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			return indent + "await " + trimmed
		}
		return line
	}
}

// StripAwaitAsync removes await keywords and async callback markers.
// Cypress chains command execution internally, so neither survives.
func StripAwaitAsync() func(string) string {
	asyncArrow := regexp.MustCompile(`async\s*(\([^)]*\)|\w+)\s*=>`)
	return func(line string) string {
		line = strings.ReplaceAll(line, "await ", "")
		return asyncArrow.ReplaceAllString(line, "() =>")
	}
}

// NativeFallback builds a catch-all for a source framework's native
// calls. The description names the unconvertible call taken from the
// line itself.
func NativeFallback(pattern, id, action string) rewrite.Fallback {
	re := regexp.MustCompile(pattern)
	return rewrite.Fallback{
		Pattern: re,
		ID:      id,
		Action:  action,
		Describe: func(line string) string {
			m := re.FindString(line)
			return fmt.Sprintf("no direct equivalent for %q", strings.TrimSuffix(m, "("))
		},
	}
}

// CypressToPlaywright converts cy.* commands and should-chains into
// Playwright locator and expect calls. Composite should-chains come
// first so the generic cy.get rule cannot shadow them.
func CypressToPlaywright() []rewrite.Rule {
	return []rewrite.Rule{
		// Assertions on selected elements.
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.visible['"]\s*\)`, `expect(page.locator($1)).toBeVisible()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]not\.be\.visible['"]\s*\)`, `expect(page.locator($1)).toBeHidden()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]not\.exist['"]\s*\)`, `expect(page.locator($1)).toHaveCount(0)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]exist['"]\s*\)`, `expect(page.locator($1)).toBeAttached()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.checked['"]\s*\)`, `expect(page.locator($1)).toBeChecked()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.disabled['"]\s*\)`, `expect(page.locator($1)).toBeDisabled()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.enabled['"]\s*\)`, `expect(page.locator($1)).toBeEnabled()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.empty['"]\s*\)`, `expect(page.locator($1)).toBeEmpty()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.text['"]\s*,\s*(.*?)\)`, `expect(page.locator($1)).toHaveText($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]contain['"]\s*,\s*(.*?)\)`, `expect(page.locator($1)).toContainText($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.value['"]\s*,\s*(.*?)\)`, `expect(page.locator($1)).toHaveValue($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.class['"]\s*,\s*(.*?)\)`, `expect(page.locator($1)).toHaveClass($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.length['"]\s*,\s*(.*?)\)`, `expect(page.locator($1)).toHaveCount($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.attr['"]\s*,\s*(.*?)\)`, `expect(page.locator($1)).toHaveAttribute($2)`),

		// URL and title assertions.
		rewrite.R(`\bcy\.url\(\)\.should\(\s*['"](?:include|contain)['"]\s*,\s*['"](.*?)['"]\s*\)`, `expect(page).toHaveURL(new RegExp('$1'))`),
		rewrite.R(`\bcy\.url\(\)\.should\(\s*['"]eq['"]\s*,\s*(.*?)\)`, `expect(page).toHaveURL($1)`),
		rewrite.R(`\bcy\.title\(\)\.should\(\s*['"]eq['"]\s*,\s*(.*?)\)`, `expect(page).toHaveTitle($1)`),

		// Navigation.
		rewrite.R(`\bcy\.visit\(`, `page.goto(`),
		rewrite.R(`\bcy\.reload\(\)`, `page.reload()`),
		rewrite.R(`\bcy\.go\(\s*['"]back['"]\s*\)`, `page.goBack()`),
		rewrite.R(`\bcy\.go\(\s*['"]forward['"]\s*\)`, `page.goForward()`),

		// Actions.
		rewrite.R(`\bcy\.get\((.*?)\)\.type\(`, `page.locator($1).fill(`),
		rewrite.R(`\bcy\.get\((.*?)\)\.clear\(\)`, `page.locator($1).clear()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.check\(\)`, `page.locator($1).check()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.uncheck\(\)`, `page.locator($1).uncheck()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.select\(`, `page.locator($1).selectOption(`),
		rewrite.R(`\bcy\.get\((.*?)\)\.focus\(\)`, `page.locator($1).focus()`),
		rewrite.R(`\bcy\.contains\((.*?)\)\.click\(\)`, `page.getByText($1).click()`),
		rewrite.R(`\bcy\.contains\(`, `page.getByText(`),
		rewrite.R(`\bcy\.wait\((\d+)\)`, `page.waitForTimeout($1)`),

		// Generic selection, after every composite rule above.
		rewrite.R(`\bcy\.get\(`, `page.locator(`),
	}
}

// PlaywrightToCypress is the reverse: locator and expect calls back into
// cy chains.
func PlaywrightToCypress() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeVisible\(\)`, `cy.get($1).should('be.visible')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeHidden\(\)`, `cy.get($1).should('not.be.visible')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveCount\(0\)`, `cy.get($1).should('not.exist')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeAttached\(\)`, `cy.get($1).should('exist')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeChecked\(\)`, `cy.get($1).should('be.checked')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeDisabled\(\)`, `cy.get($1).should('be.disabled')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeEnabled\(\)`, `cy.get($1).should('be.enabled')`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveText\((.*?)\)`, `cy.get($1).should('have.text', $2)`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toContainText\((.*?)\)`, `cy.get($1).should('contain', $2)`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveValue\((.*?)\)`, `cy.get($1).should('have.value', $2)`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveClass\((.*?)\)`, `cy.get($1).should('have.class', $2)`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveCount\((.*?)\)`, `cy.get($1).should('have.length', $2)`),
		rewrite.R(`\bexpect\(page\)\.toHaveTitle\((.*?)\)`, `cy.title().should('eq', $1)`),
		rewrite.R(`\bexpect\(page\)\.toHaveURL\(new RegExp\('(.*?)'\)\)`, `cy.url().should('include', '$1')`),
		rewrite.R(`\bexpect\(page\)\.toHaveURL\((.*?)\)`, `cy.url().should('eq', $1)`),

		rewrite.R(`\bpage\.goto\(`, `cy.visit(`),
		rewrite.R(`\bpage\.reload\(\)`, `cy.reload()`),
		rewrite.R(`\bpage\.goBack\(\)`, `cy.go('back')`),
		rewrite.R(`\bpage\.goForward\(\)`, `cy.go('forward')`),
		rewrite.R(`\bpage\.waitForTimeout\(`, `cy.wait(`),

		rewrite.R(`\bpage\.locator\((.*?)\)\.fill\(`, `cy.get($1).type(`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.selectOption\(`, `cy.get($1).select(`),
		rewrite.R(`\bpage\.getByText\((.*?)\)\.click\(\)`, `cy.contains($1).click()`),
		rewrite.R(`\bpage\.getByText\(`, `cy.contains(`),
		rewrite.R(`\bpage\.locator\(`, `cy.get(`),
	}
}

// CypressToWebdriverIO converts cy chains into WebdriverIO element calls.
func CypressToWebdriverIO() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.visible['"]\s*\)`, `expect($($1)).toBeDisplayed()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]not\.exist['"]\s*\)`, `expect($($1)).not.toBeExisting()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]exist['"]\s*\)`, `expect($($1)).toBeExisting()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.text['"]\s*,\s*(.*?)\)`, `expect($($1)).toHaveText($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]have\.value['"]\s*,\s*(.*?)\)`, `expect($($1)).toHaveValue($2)`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.enabled['"]\s*\)`, `expect($($1)).toBeEnabled()`),
		rewrite.R(`\bcy\.get\((.*?)\)\.should\(\s*['"]be\.disabled['"]\s*\)`, `expect($($1)).toBeDisabled()`),

		rewrite.R(`\bcy\.visit\(`, `browser.url(`),
		rewrite.R(`\bcy\.reload\(\)`, `browser.refresh()`),
		rewrite.R(`\bcy\.go\(\s*['"]back['"]\s*\)`, `browser.back()`),
		rewrite.R(`\bcy\.go\(\s*['"]forward['"]\s*\)`, `browser.forward()`),
		rewrite.R(`\bcy\.wait\((\d+)\)`, `browser.pause($1)`),

		rewrite.R(`\bcy\.get\((.*?)\)\.type\(`, `$($1).setValue(`),
		rewrite.R(`\bcy\.get\((.*?)\)\.clear\(\)`, `$($1).clearValue()`),
		rewrite.R(`\bcy\.get\(`, `$(`),
	}
}

// WebdriverIOToCypress is the reverse table.
func WebdriverIOToCypress() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toBeDisplayed\(\)`, `cy.get($1).should('be.visible')`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.not\.toBeExisting\(\)`, `cy.get($1).should('not.exist')`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toBeExisting\(\)`, `cy.get($1).should('exist')`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toHaveText\((.*?)\)`, `cy.get($1).should('have.text', $2)`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toHaveValue\((.*?)\)`, `cy.get($1).should('have.value', $2)`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toBeEnabled\(\)`, `cy.get($1).should('be.enabled')`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toBeDisabled\(\)`, `cy.get($1).should('be.disabled')`),

		rewrite.R(`\bbrowser\.url\(`, `cy.visit(`),
		rewrite.R(`\bbrowser\.refresh\(\)`, `cy.reload()`),
		rewrite.R(`\bbrowser\.back\(\)`, `cy.go('back')`),
		rewrite.R(`\bbrowser\.forward\(\)`, `cy.go('forward')`),
		rewrite.R(`\bbrowser\.pause\(`, `cy.wait(`),

		rewrite.R(`\$\((.*?)\)\.setValue\(`, `cy.get($1).type(`),
		rewrite.R(`\$\((.*?)\)\.clearValue\(\)`, `cy.get($1).clear()`),
		rewrite.R(`\$\((.*?)\)\.click\(\)`, `cy.get($1).click()`),
		rewrite.R(`\$\(`, `cy.get(`),
	}
}

// PuppeteerToPlaywright maps the Puppeteer page API onto Playwright's.
func PuppeteerToPlaywright() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bpuppeteer\.launch\(`, `chromium.launch(`),
		rewrite.R(`\bpage\.waitForSelector\((.*?),\s*\{[^}]*\}\)`, `page.locator($1).waitFor()`),
		rewrite.R(`\bpage\.waitForSelector\((.*?)\)`, `page.locator($1).waitFor()`),
		rewrite.R(`\bpage\.waitForNavigation\(\)`, `page.waitForLoadState()`),
		rewrite.R(`\bpage\.type\((.*?),\s*(.*?)\)`, `page.fill($1, $2)`),
		rewrite.R(`\bpage\.\$\$\(`, `page.locator(`),
		rewrite.R(`\bpage\.\$\(`, `page.locator(`),
	}
}

// PlaywrightToPuppeteer is the reverse table.
func PlaywrightToPuppeteer() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bchromium\.launch\(`, `puppeteer.launch(`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeVisible\(\)`, `page.waitForSelector($1, { visible: true })`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.waitFor\(\)`, `page.waitForSelector($1)`),
		rewrite.R(`\bpage\.waitForLoadState\(\)`, `page.waitForNavigation()`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.fill\(`, `page.type($1, `),
		rewrite.R(`\bpage\.locator\((.*?)\)\.click\(\)`, `page.click($1)`),
		rewrite.R(`\bpage\.fill\((.*?),\s*(.*?)\)`, `page.type($1, $2)`),
		rewrite.R(`\bpage\.locator\(`, `page.$(`),
	}
}

// SeleniumToPlaywright maps selenium-webdriver calls onto Playwright.
func SeleniumToPlaywright() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bdriver\.findElement\(By\.css\((.*?)\)\)`, `page.locator($1)`),
		rewrite.RF(`\bdriver\.findElement\(By\.id\(['"](.*?)['"]\)\)`, func(m []string) string {
			return fmt.Sprintf("page.locator('#%s')", m[1])
		}),
		rewrite.R(`\bdriver\.get\(`, `page.goto(`),
		rewrite.R(`\bdriver\.navigate\(\)\.back\(\)`, `page.goBack()`),
		rewrite.R(`\bdriver\.navigate\(\)\.forward\(\)`, `page.goForward()`),
		rewrite.R(`\bdriver\.navigate\(\)\.refresh\(\)`, `page.reload()`),
		rewrite.R(`\bdriver\.getTitle\(\)`, `page.title()`),
		rewrite.R(`\bdriver\.getCurrentUrl\(\)`, `page.url()`),
		rewrite.R(`\bdriver\.quit\(\)`, `browser.close()`),
		rewrite.R(`\.sendKeys\(`, `.fill(`),
		rewrite.R(`\.getText\(\)`, `.textContent()`),
	}
}

// TestCafeToPlaywright maps TestCafe actions onto Playwright.
func TestCafeToPlaywright() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bt\.navigateTo\(`, `page.goto(`),
		rewrite.R(`\bt\.click\(\s*Selector\((.*?)\)\s*\)`, `page.locator($1).click()`),
		rewrite.R(`\bt\.typeText\(\s*Selector\((.*?)\)\s*,\s*(.*?)\)`, `page.locator($1).fill($2)`),
		rewrite.R(`\bt\.expect\(\s*Selector\((.*?)\)\.exists\s*\)\.ok\(\)`, `expect(page.locator($1)).toBeAttached()`),
		rewrite.R(`\bt\.expect\(\s*Selector\((.*?)\)\.visible\s*\)\.ok\(\)`, `expect(page.locator($1)).toBeVisible()`),
		rewrite.R(`\bSelector\(`, `page.locator(`),
	}
}

// WebdriverIOToPlaywright maps browser/$ element calls onto Playwright.
func WebdriverIOToPlaywright() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toBeDisplayed\(\)`, `expect(page.locator($1)).toBeVisible()`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.not\.toBeExisting\(\)`, `expect(page.locator($1)).toHaveCount(0)`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toBeExisting\(\)`, `expect(page.locator($1)).toBeAttached()`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toHaveText\((.*?)\)`, `expect(page.locator($1)).toHaveText($2)`),
		rewrite.R(`\bexpect\(\$\((.*?)\)\)\.toHaveValue\((.*?)\)`, `expect(page.locator($1)).toHaveValue($2)`),

		rewrite.R(`\bbrowser\.url\(`, `page.goto(`),
		rewrite.R(`\bbrowser\.refresh\(\)`, `page.reload()`),
		rewrite.R(`\bbrowser\.back\(\)`, `page.goBack()`),
		rewrite.R(`\bbrowser\.forward\(\)`, `page.goForward()`),
		rewrite.R(`\bbrowser\.pause\(`, `page.waitForTimeout(`),

		rewrite.R(`\$\((.*?)\)\.setValue\(`, `page.locator($1).fill(`),
		rewrite.R(`\$\((.*?)\)\.clearValue\(\)`, `page.locator($1).clear()`),
		rewrite.R(`\$\$\(`, `page.locator(`),
		rewrite.R(`\$\(`, `page.locator(`),
	}
}

// PlaywrightToWebdriverIO is the reverse table.
func PlaywrightToWebdriverIO() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeVisible\(\)`, `expect($($1)).toBeDisplayed()`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveCount\(0\)`, `expect($($1)).not.toBeExisting()`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeAttached\(\)`, `expect($($1)).toBeExisting()`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveText\((.*?)\)`, `expect($($1)).toHaveText($2)`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toHaveValue\((.*?)\)`, `expect($($1)).toHaveValue($2)`),

		rewrite.R(`\bpage\.goto\(`, `browser.url(`),
		rewrite.R(`\bpage\.reload\(\)`, `browser.refresh()`),
		rewrite.R(`\bpage\.goBack\(\)`, `browser.back()`),
		rewrite.R(`\bpage\.goForward\(\)`, `browser.forward()`),
		rewrite.R(`\bpage\.waitForTimeout\(`, `browser.pause(`),

		rewrite.R(`\bpage\.locator\((.*?)\)\.fill\(`, `$($1).setValue(`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.clear\(\)`, `$($1).clearValue()`),
		rewrite.R(`\bpage\.locator\(`, `$(`),
	}
}

// PlaywrightToSelenium maps Playwright calls onto selenium-webdriver.
// Selenium carries no assertion library of its own, so expect calls are
// left for the fallback stage.
func PlaywrightToSelenium() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bpage\.goto\(`, `driver.get(`),
		rewrite.R(`\bpage\.goBack\(\)`, `driver.navigate().back()`),
		rewrite.R(`\bpage\.goForward\(\)`, `driver.navigate().forward()`),
		rewrite.R(`\bpage\.reload\(\)`, `driver.navigate().refresh()`),
		rewrite.R(`\bpage\.title\(\)`, `driver.getTitle()`),
		rewrite.R(`\bpage\.url\(\)`, `driver.getCurrentUrl()`),
		rewrite.R(`\bbrowser\.close\(\)`, `driver.quit()`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.fill\(`, `driver.findElement(By.css($1)).sendKeys(`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.textContent\(\)`, `driver.findElement(By.css($1)).getText()`),
		rewrite.R(`\bpage\.locator\((.*?)\)`, `driver.findElement(By.css($1))`),
	}
}

// PlaywrightToTestCafe maps Playwright calls onto TestCafe's t API.
func PlaywrightToTestCafe() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeVisible\(\)`, `t.expect(Selector($1).visible).ok()`),
		rewrite.R(`\bexpect\(page\.locator\((.*?)\)\)\.toBeAttached\(\)`, `t.expect(Selector($1).exists).ok()`),
		rewrite.R(`\bpage\.goto\(`, `t.navigateTo(`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.click\(\)`, `t.click(Selector($1))`),
		rewrite.R(`\bpage\.locator\((.*?)\)\.fill\((.*?)\)`, `t.typeText(Selector($1), $2)`),
		rewrite.R(`\bpage\.locator\(`, `Selector(`),
	}
}

// MochaStyleToPlaywrightTest converts describe/it structure and
// Mocha-style hooks into the Playwright test runner's structure. The
// it and hook callbacks gain the async ({ page }) fixture signature.
func MochaStyleToPlaywrightTest() []rewrite.Rule {
	callback := `(?:async\s+)?(?:\(\s*\)|function\s*\(\s*\))\s*(?:=>\s*)?\{`
	return []rewrite.Rule{
		rewrite.R(`^(\s*)describe\.only\(`, `${1}test.describe.only(`),
		rewrite.R(`^(\s*)describe\.skip\(`, `${1}test.describe.skip(`),
		rewrite.R(`^(\s*)(?:describe|context)\(`, `${1}test.describe(`),

		rewrite.R(`^(\s*)it\.only\(\s*(.+?),\s*`+callback, `${1}test.only($2, async ({ page }) => {`),
		rewrite.R(`^(\s*)it\.skip\(\s*(.+?),\s*`+callback, `${1}test.skip($2, async ({ page }) => {`),
		rewrite.R(`^(\s*)(?:it|specify)\(\s*(.+?),\s*`+callback, `${1}test($2, async ({ page }) => {`),

		rewrite.R(`^(\s*)(?:before|beforeAll)\(\s*`+callback, `${1}test.beforeAll(async ({ page }) => {`),
		rewrite.R(`^(\s*)(?:after|afterAll)\(\s*`+callback, `${1}test.afterAll(async ({ page }) => {`),
		rewrite.R(`^(\s*)beforeEach\(\s*`+callback, `${1}test.beforeEach(async ({ page }) => {`),
		rewrite.R(`^(\s*)afterEach\(\s*`+callback, `${1}test.afterEach(async ({ page }) => {`),
	}
}

// PlaywrightTestToMochaAsync converts the Playwright runner's structure
// to describe/it keeping callbacks async, for targets that drive the
// browser with awaits (WebdriverIO, Puppeteer, Selenium).
func PlaywrightTestToMochaAsync() []rewrite.Rule {
	fixture := `async\s*\(\s*\{[^}]*\}\s*\)\s*=>`
	return []rewrite.Rule{
		rewrite.R(`^(\s*)test\.describe\(`, `${1}describe(`),
		rewrite.R(`^(\s*)test\.beforeAll\(\s*`+fixture, `${1}before(async () =>`),
		rewrite.R(`^(\s*)test\.afterAll\(\s*`+fixture, `${1}after(async () =>`),
		rewrite.R(`^(\s*)test\.beforeEach\(\s*`+fixture, `${1}beforeEach(async () =>`),
		rewrite.R(`^(\s*)test\.afterEach\(\s*`+fixture, `${1}afterEach(async () =>`),
		rewrite.R(`^(\s*)test\(\s*(.+?),\s*`+fixture, `${1}it($2, async () =>`),
	}
}

// PlaywrightTestToMochaStyle is the reverse structural conversion.
func PlaywrightTestToMochaStyle() []rewrite.Rule {
	fixture := `async\s*\(\s*\{[^}]*\}\s*\)\s*=>\s*\{`
	return []rewrite.Rule{
		rewrite.R(`^(\s*)test\.describe\.only\(`, `${1}describe.only(`),
		rewrite.R(`^(\s*)test\.describe\.skip\(`, `${1}describe.skip(`),
		rewrite.R(`^(\s*)test\.describe\(`, `${1}describe(`),

		rewrite.R(`^(\s*)test\.beforeAll\(\s*`+fixture, `${1}before(() => {`),
		rewrite.R(`^(\s*)test\.afterAll\(\s*`+fixture, `${1}after(() => {`),
		rewrite.R(`^(\s*)test\.beforeEach\(\s*`+fixture, `${1}beforeEach(() => {`),
		rewrite.R(`^(\s*)test\.afterEach\(\s*`+fixture, `${1}afterEach(() => {`),

		rewrite.R(`^(\s*)test\.only\(\s*(.+?),\s*`+fixture, `${1}it.only($2, () => {`),
		rewrite.R(`^(\s*)test\.skip\(\s*(.+?),\s*`+fixture, `${1}it.skip($2, () => {`),
		rewrite.R(`^(\s*)test\(\s*(.+?),\s*`+fixture, `${1}it($2, () => {`),
	}
}
