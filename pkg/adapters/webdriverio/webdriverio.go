// Package webdriverio implements the WebdriverIO framework adapter.
package webdriverio

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/e2e"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkWebdriverIO

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`from\s+['"]@wdio/globals['"]`, 55),
	adapter.Sig(`\bbrowser\.(url|pause|execute|setWindowSize)\(`, 40),
	adapter.Sig(`\.(toBeDisplayed|toBeExisting|toBeClickable)\(`, 35),
	adapter.Sig(`await\s+\$\(`, 25),
	adapter.Sig(`\b(describe|it)\(`, 10),
	adapter.Sig(`\bcy\.`, -35),
	adapter.Sig(`from\s+['"]@playwright/test['"]`, -40),
	adapter.Sig(`\bpage\.locator\(`, -25),
}

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
				e2e.BrowserNavigation(),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	addAwait := e2e.AddAwait("browser.", "$(", "$$(", "expect(")

	fromCypress := &rewrite.Pipeline{
		PreJoin:  true,
		Rules:    e2e.CypressToWebdriverIO(),
		PostLine: addAwait,
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bcy\.\w+\(|\bCypress\.\w+`, "CY-CMD", "rewrite using WebdriverIO APIs"),
		},
	}

	fromPlaywright := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToWebdriverIO(),
		Renames:      e2e.PlaywrightTestToMochaAsync(),
		PostLine:     addAwait,
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bpage\.\w+\(`, "PW-API", "rewrite using WebdriverIO APIs"),
		},
	}

	generic := &rewrite.Pipeline{
		PreJoin:  true,
		Rules:    e2e.CypressToWebdriverIO(),
		PostLine: addAwait,
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkCypress:    fromCypress,
			adapter.FrameworkPlaywright: fromPlaywright,
		},
		Generic: generic,
	}
}

func (a *Adapter) Metadata() adapter.Metadata {
	return adapter.Metadata{
		Name:     frameworkName,
		Language: ir.LanguageJavaScript,
		Paradigm: adapter.ParadigmE2E,
		Imports: adapter.ImportSpec{
			Globals: []string{"browser", "$", "$$", "describe", "it", "before", "after", "beforeEach", "afterEach"},
			Modules: []string{`import { browser, $, expect } from '@wdio/globals';`},
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
