// Package e2e provides the line classifiers and rewrite rule tables
// shared by the browser end-to-end framework adapters (Cypress,
// Playwright, WebdriverIO, Puppeteer, Selenium, TestCafe).
package e2e

import (
	"regexp"
	"strings"

	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

var (
	cyNavRe      = regexp.MustCompile(`\bcy\.(visit|reload)\(\s*(['"` + "`" + `]?)([^'"` + "`" + `)]*)`)
	cyGoRe       = regexp.MustCompile(`\bcy\.go\(\s*['"](back|forward)['"]`)
	pageNavRe    = regexp.MustCompile(`\b(?:page|tab)\.(goto|goBack|goForward|reload)\(\s*(['"` + "`" + `]?)([^'"` + "`" + `)]*)`)
	browserNavRe = regexp.MustCompile(`\bbrowser\.(url|back|forward|refresh)\(\s*(['"` + "`" + `]?)([^'"` + "`" + `)]*)`)
	driverNavRe  = regexp.MustCompile(`\bdriver\.(?:get\(\s*(['"` + "`" + `]?)([^'"` + "`" + `)]*)|navigate\(\)\.(back|forward|refresh)\(\))`)
	tNavRe       = regexp.MustCompile(`\bt\.navigateTo\(\s*(['"` + "`" + `]?)([^'"` + "`" + `)]*)`)

	shouldRe       = regexp.MustCompile(`\bcy\.(?:get|contains|find)\((.*?)\)(?:\.[\w$]+\([^)]*\))*\.should\(\s*['"]([^'"]+)['"]\s*,?\s*(.*?)\)`)
	expectTargetRe = regexp.MustCompile(`^(?:await\s+)?expect\((.*?)\)\.(not\.)?(to\w+)\((.*?)\);?\s*$`)
)

func navAction(verb string) ir.NavAction {
	switch verb {
	case "visit", "goto", "url", "get", "navigateTo":
		return ir.NavVisit
	case "goBack", "back":
		return ir.NavGoBack
	case "goForward", "forward":
		return ir.NavGoForward
	case "reload", "refresh":
		return ir.NavReload
	}
	return ir.NavVisit
}

// CypressNavigation classifies cy.visit / cy.reload / cy.go lines.
func CypressNavigation() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: cyNavRe,
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.Navigation{Base: base, Action: navAction(m[1]), URL: m[3]}
		},
	}
}

// CypressHistory classifies cy.go('back') / cy.go('forward').
func CypressHistory() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: cyGoRe,
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.Navigation{Base: base, Action: navAction(m[1])}
		},
	}
}

// PageNavigation classifies page.goto and its history/reload siblings,
// shared by Playwright and Puppeteer.
func PageNavigation() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: pageNavRe,
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.Navigation{Base: base, Action: navAction(m[1]), URL: m[3]}
		},
	}
}

// BrowserNavigation classifies WebdriverIO's browser.url family.
func BrowserNavigation() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: browserNavRe,
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.Navigation{Base: base, Action: navAction(m[1]), URL: m[3]}
		},
	}
}

// DriverNavigation classifies Selenium's driver.get and
// driver.navigate() history calls.
func DriverNavigation() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: driverNavRe,
		Build: func(m []string, base ir.Base) ir.Node {
			if m[3] != "" {
				return &ir.Navigation{Base: base, Action: navAction(m[3])}
			}
			return &ir.Navigation{Base: base, Action: ir.NavVisit, URL: m[2]}
		},
	}
}

// TestCafeNavigation classifies t.navigateTo calls.
func TestCafeNavigation() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: tNavRe,
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.Navigation{Base: base, Action: ir.NavVisit, URL: m[2]}
		},
	}
}

// ShouldAssertion classifies Cypress cy.get(sel).should('matcher', arg)
// chains.
func ShouldAssertion() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: shouldRe,
		Build: func(m []string, base ir.Base) ir.Node {
			matcher := m[2]
			negated := strings.HasPrefix(matcher, "not.")
			matcher = strings.TrimPrefix(matcher, "not.")
			return &ir.Assertion{
				Base:     base,
				Matcher:  matcher,
				Subject:  m[1],
				Expected: strings.TrimSpace(m[3]),
				Negated:  negated,
			}
		},
	}
}

// ExpectAssertion classifies expect(target).toMatcher(...) assertions as
// written in Playwright, Puppeteer, and WebdriverIO specs.
func ExpectAssertion() jsparse.Classifier {
	return jsparse.Classifier{
		Pattern: expectTargetRe,
		Build: func(m []string, base ir.Base) ir.Node {
			return &ir.Assertion{
				Base:     base,
				Matcher:  m[3],
				Subject:  m[1],
				Expected: m[4],
				Negated:  m[2] != "",
			}
		},
	}
}
