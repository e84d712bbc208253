// Package puppeteer implements the Puppeteer framework adapter.
// Puppeteer is a browser driver rather than a test runner, so specs
// using it pair with a Jest or Mocha style runner for structure.
package puppeteer

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/e2e"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkPuppeteer

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`require\(['"]puppeteer['"]\)|from\s+['"]puppeteer['"]`, 60),
	adapter.Sig(`\bpuppeteer\.launch\(`, 45),
	adapter.Sig(`\bpage\.(\$|\$\$|waitForSelector|waitForNavigation)\(`, 30),
	adapter.Sig(`\bbrowser\.newPage\(\)`, 20),
	adapter.Sig(`from\s+['"]@playwright/test['"]`, -45),
	adapter.Sig(`\bcy\.`, -35),
}

var importLines = []string{`const puppeteer = require('puppeteer');`}

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
	fromPlaywright := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToPuppeteer(),
		Renames:      e2e.PlaywrightTestToMochaAsync(),
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bexpect\(page\)\.\w+\(|\btest\.\w+\(`, "PW-API", "rewrite using Puppeteer and an assertion library"),
		},
		Imports: importLines,
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToPuppeteer(),
		Renames:      e2e.PlaywrightTestToMochaAsync(),
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
