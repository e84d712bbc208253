// Package cypress implements the Cypress framework adapter.
package cypress

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/e2e"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkCypress

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`\bcy\.(visit|get|contains|intercept|request|wait|task|fixture)\(`, 55),
	adapter.Sig(`\bCypress\.(env|config|Commands)\b`, 35),
	adapter.Sig(`\.should\(\s*['"]`, 25),
	adapter.Sig(`\b(describe|context|it)\(`, 10),
	adapter.Sig(`from\s+['"]@playwright/test['"]`, -40),
	adapter.Sig(`\bpage\.(goto|locator)\(`, -30),
	adapter.Sig(`\bbrowser\.(url|pause)\(`, -25),
	adapter.Sig(`\bt\.(navigateTo|typeText)\(`, -25),
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
				e2e.ShouldAssertion(),
				e2e.CypressNavigation(),
				e2e.CypressHistory(),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	fromPlaywright := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToCypress(),
		Renames:      e2e.PlaywrightTestToMochaStyle(),
		PostLine:     e2e.StripAwaitAsync(),
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bpage\.\w+\(|\bcontext\.\w+\(|\b(?:chromium|firefox|webkit)\.\w+\(`, "PW-API", "rewrite using Cypress commands"),
		},
	}

	fromWebdriverIO := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@wdio/globals", "webdriverio"),
		Rules:        e2e.WebdriverIOToCypress(),
		PostLine:     e2e.StripAwaitAsync(),
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bbrowser\.\w+\(`, "WDIO-API", "rewrite using Cypress commands"),
		},
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToCypress(),
		Renames:      e2e.PlaywrightTestToMochaStyle(),
		PostLine:     e2e.StripAwaitAsync(),
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkPlaywright:  fromPlaywright,
			adapter.FrameworkWebdriverIO: fromWebdriverIO,
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
			Globals: []string{"cy", "Cypress", "describe", "context", "it", "before", "after", "beforeEach", "afterEach"},
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
