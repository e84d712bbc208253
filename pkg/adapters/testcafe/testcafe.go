// Package testcafe implements the TestCafe framework adapter.
package testcafe

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/e2e"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkTestCafe

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`from\s+['"]testcafe['"]`, 60),
	adapter.Sig("(?m)^fixture\\s*[(`]", 45),
	adapter.Sig(`\bt\.(click|typeText|expect|navigateTo|hover|drag)\(`, 40),
	adapter.Sig(`\bSelector\(`, 25),
	adapter.Sig(`\bcy\.`, -35),
	adapter.Sig(`from\s+['"]@playwright/test['"]`, -40),
}

var importLines = []string{`import { Selector } from 'testcafe';`}

type Adapter struct {
	scanner   jsparse.Scanner
	pipelines rewrite.PipelineSet
}

func New() *Adapter {
	a := &Adapter{
		scanner: jsparse.Scanner{
			Framework: frameworkName,
			Classifiers: []jsparse.Classifier{
				e2e.TestCafeNavigation(),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	fromPlaywright := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules: append(e2e.PlaywrightToTestCafe(),
			rewrite.R(`async\s*\(\s*\{[^}]*\}\s*\)\s*=>`, `async t =>`)),
		// TestCafe fixtures are flat statements, so describe blocks
		// cannot be rewritten in place.
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\btest\.describe\(`, "TC-FIXTURE", "flatten the suite into a fixture declaration"),
			e2e.NativeFallback(`\bpage\.\w+\(|\bexpect\(page\)`, "PW-API", "rewrite using TestCafe's t API"),
		},
		Imports: importLines,
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToTestCafe(),
		Imports:      importLines,
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
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
			Globals: []string{"fixture", "test"},
			Modules: importLines,
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
