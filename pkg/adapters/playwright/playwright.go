// Package playwright implements the Playwright framework adapter.
package playwright

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/e2e"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkPlaywright

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`from\s+['"]@playwright/test['"]`, 60),
	adapter.Sig(`async\s*\(\s*\{\s*page\s*[,}]`, 30),
	adapter.Sig(`\bpage\.(goto|locator|getByText|getByRole|waitForLoadState)\(`, 30),
	adapter.Sig(`\btest\.(describe|beforeAll|beforeEach)\(`, 25),
	adapter.Sig(`\bcy\.`, -35),
	adapter.Sig(`require\(['"]puppeteer['"]\)|from\s+['"]puppeteer['"]`, -40),
	adapter.Sig(`\bselenium-webdriver\b`, -30),
}

const importLine = `import { test, expect } from '@playwright/test';`

type Adapter struct {
	scanner   jsparse.Scanner
	pipelines rewrite.PipelineSet
}

func New() *Adapter {
	a := &Adapter{
		scanner: jsparse.Scanner{
			Framework: frameworkName,
			Classifiers: []jsparse.Classifier{
				e2e.ExpectAssertion(),
				e2e.PageNavigation(),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	addAwait := e2e.AddAwait("page.", "expect(")

	fromCypress := &rewrite.Pipeline{
		PreJoin:  true,
		Rules:    e2e.CypressToPlaywright(),
		Renames:  e2e.MochaStyleToPlaywrightTest(),
		PostLine: addAwait,
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bcy\.\w+\(|\bCypress\.\w+`, "CY-CMD", "rewrite using Playwright APIs"),
		},
		Imports:   []string{importLine},
		PostSplit: true,
	}

	fromPuppeteer := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("puppeteer"),
		Rules:        e2e.PuppeteerToPlaywright(),
		Renames:      e2e.MochaStyleToPlaywrightTest(),
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bpuppeteer\.\w+\(`, "PPTR-API", "rewrite using Playwright APIs"),
		},
		Imports: []string{importLine},
	}

	fromSelenium := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("selenium-webdriver"),
		Rules:        e2e.SeleniumToPlaywright(),
		Renames:      e2e.MochaStyleToPlaywrightTest(),
		PostLine:     addAwait,
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bdriver\.\w+\(|\bBy\.\w+\(|\buntil\.\w+\(`, "SE-API", "rewrite using Playwright APIs"),
		},
		Imports: []string{importLine},
	}

	fromTestCafe := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("testcafe"),
		Rules: append(e2e.TestCafeToPlaywright(),
			rewrite.R(`async\s+t\s*=>`, `async ({ page }) =>`)),
		PostLine: addAwait,
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bt\.\w+\(|^fixture\b`, "TC-API", "rewrite using Playwright APIs"),
		},
		Imports: []string{importLine},
	}

	fromWebdriverIO := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@wdio/globals", "webdriverio"),
		Rules:        e2e.WebdriverIOToPlaywright(),
		Renames:      e2e.MochaStyleToPlaywrightTest(),
		PostLine:     addAwait,
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bbrowser\.\w+\(`, "WDIO-API", "rewrite using Playwright APIs"),
		},
		Imports: []string{importLine},
	}

	generic := &rewrite.Pipeline{
		PreJoin:  true,
		Rules:    e2e.CypressToPlaywright(),
		Renames:  e2e.MochaStyleToPlaywrightTest(),
		PostLine: addAwait,
		Imports:  []string{importLine},
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkCypress:     fromCypress,
			adapter.FrameworkPuppeteer:   fromPuppeteer,
			adapter.FrameworkSelenium:    fromSelenium,
			adapter.FrameworkTestCafe:    fromTestCafe,
			adapter.FrameworkWebdriverIO: fromWebdriverIO,
		},
		Generic: generic,
	}
}

func (a *Adapter) Metadata() adapter.Metadata {
	return adapter.Metadata{
		Name:     frameworkName,
		Language: ir.LanguageTypeScript,
		Paradigm: adapter.ParadigmE2E,
		Imports: adapter.ImportSpec{
			Modules: []string{importLine},
		},
	}
}

func (a *Adapter) Detect(source string) int {
	clean := jsparse.StripComments(source, jsparse.DetectFileLanguage(source))
	return adapter.ScoreSignatures(clean, signatures)
}

func (a *Adapter) Parse(source string) *ir.TestFile {
	return a.scanner.Parse(source)
}

func (a *Adapter) Emit(file *ir.TestFile, source string) adapter.EmitResult {
	res := a.pipelines.Emit(file.Framework, source)
	return adapter.EmitResult{
		Output:    res.Output,
		Supported: len(res.Todos) == 0,
		Todos:     res.Todos,
		Warnings:  res.Warnings,
	}
}
