// Package mocha implements the Mocha framework adapter. Mocha itself
// carries no assertion or mocking layer, so the adapter assumes the
// usual chai and sinon companions on both the parse and emit sides.
package mocha

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkMocha

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`require\(['"]chai['"]\)|from\s+['"]chai['"]`, 45),
	adapter.Sig(`\.to\.(equal|eql|deep|have|be|include|match|throw)\b`, 35),
	adapter.Sig(`\bsinon\.(stub|spy|fake|mock|useFakeTimers)\(`, 25),
	adapter.Sig(`\b(suiteSetup|suiteTeardown|specify)\(`, 25),
	adapter.Sig(`\b(before|after)\(\s*(?:async\s*)?(?:\(|function)`, 15),
	adapter.Sig(`\b(describe|context|it)\(`, 10),
	adapter.Sig(`\bjest\.`, -35),
	adapter.Sig(`\bvi\.`, -35),
	adapter.Sig(`\bcy\.`, -30),
	adapter.Sig(`\bjasmine\.`, -25),
}

var libraryImports = []string{
	`const { expect } = require('chai');`,
	`const sinon = require('sinon');`,
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
				jsunit.ExpectAssertion(),
				jsunit.ChainAssertion(),
				jsunit.MockClassifier("sinon"),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	fromJest := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@jest/globals"),
		Rules:        append(jsunit.JestToChai(), jsunit.JestToSinon()...),
		Renames:      jsunit.JestHooksToMocha(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bjest\.\w+\(`, "JEST-API", "replace with the equivalent sinon API"),
		},
		Imports: libraryImports,
	}

	fromVitest := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("vitest"),
		Rules: append(append(jsunit.ViToJest(), jsunit.JestToChai()...),
			jsunit.JestToSinon()...),
		Renames: jsunit.JestHooksToMocha(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bvi\.\w+\(`, "VI-API", "replace with the equivalent sinon API"),
		},
		Imports: libraryImports,
	}

	fromJasmine := &rewrite.Pipeline{
		Rules: append(append(jsunit.JasmineToJest(), jsunit.JestToChai()...),
			jsunit.JestToSinon()...),
		Renames: append(jsunit.JasmineStructureToJest(), jsunit.JestHooksToMocha()...),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bjasmine\.\w+\(`, "JASMINE-API", "replace with the equivalent sinon API"),
		},
		Imports: libraryImports,
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@jest/globals", "vitest"),
		Rules: append(append(jsunit.ViToJest(), jsunit.JestToChai()...),
			jsunit.JestToSinon()...),
		Renames: jsunit.JestHooksToMocha(),
		Imports: libraryImports,
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkJest:    fromJest,
			adapter.FrameworkVitest:  fromVitest,
			adapter.FrameworkJasmine: fromJasmine,
		},
		Generic: generic,
	}
}

func (a *Adapter) Metadata() adapter.Metadata {
	return adapter.Metadata{
		Name:     frameworkName,
		Language: ir.LanguageJavaScript,
		Paradigm: adapter.ParadigmUnit,
		Imports: adapter.ImportSpec{
			Globals:   []string{"describe", "context", "it", "specify", "before", "after", "beforeEach", "afterEach"},
			Libraries: libraryImports,
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
