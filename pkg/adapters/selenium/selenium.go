// Package selenium implements the adapter for selenium-webdriver tests.
package selenium

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/e2e"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkSelenium

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`require\(['"]selenium-webdriver['"]\)|from\s+['"]selenium-webdriver['"]`, 60),
	adapter.Sig(`\bdriver\.(get|findElement|findElements|wait|quit)\(`, 40),
	adapter.Sig(`\bBy\.(css|id|xpath|className|name)\(`, 35),
	adapter.Sig(`\buntil\.(elementLocated|titleIs|urlContains)\(`, 25),
	adapter.Sig(`\bnew Builder\(\)`, 25),
	adapter.Sig(`\bcy\.`, -35),
	adapter.Sig(`from\s+['"]@playwright/test['"]`, -40),
}

var importLines = []string{`const { Builder, By, until } = require('selenium-webdriver');`}

type Adapter struct {
	scanner   jsparse.Scanner
	pipelines rewrite.PipelineSet
}

func New() *Adapter {
	a := &Adapter{
		scanner: jsparse.Scanner{
			Framework: frameworkName,
			Classifiers: []jsparse.Classifier{
				e2e.DriverNavigation(),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	// Selenium carries no assertion layer; leftover expect calls fall
	// through to a marker so the reader wires up their own.
	fromPlaywright := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToSelenium(),
		Renames:      e2e.PlaywrightTestToMochaAsync(),
		Fallbacks: []rewrite.Fallback{
			e2e.NativeFallback(`\bexpect\(|\bpage\.\w+\(`, "PW-API", "rewrite using selenium-webdriver and an assertion library"),
		},
		Imports: importLines,
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@playwright/test"),
		Rules:        e2e.PlaywrightToSelenium(),
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
