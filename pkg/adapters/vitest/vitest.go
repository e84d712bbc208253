// Package vitest implements the Vitest framework adapter.
package vitest

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkVitest

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`from\s+['"]vitest['"]`, 55),
	adapter.Sig(`\bvi\.(fn|mock|spyOn|useFakeTimers|importActual|stubGlobal)\(`, 45),
	adapter.Sig(`\bexpect\(.*\)\.(toBe|toEqual|toStrictEqual)\(`, 15),
	adapter.Sig(`\b(describe|it|test)\(`, 10),
	adapter.Sig(`\bjest\.`, -35),
	adapter.Sig(`from\s+['"]@jest/globals['"]`, -40),
	adapter.Sig(`\bcy\.`, -30),
	adapter.Sig(`\bsinon\.`, -25),
}

const importLine = `import { describe, it, expect, vi, beforeAll, afterAll, beforeEach, afterEach } from 'vitest';`

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
				jsunit.MockClassifier("vi"),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	fromJest := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@jest/globals"),
		Rules:        jsunit.JestToVi(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bjest\.\w+\(`, "JEST-API", "replace with the equivalent vi API"),
		},
		Imports: []string{importLine},
	}

	fromMocha := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("chai", "sinon", "sinon-chai", "mocha"),
		Rules: append(append(jsunit.ChaiToJest(), jsunit.SinonToJest()...),
			jsunit.JestToVi()...),
		Renames: jsunit.MochaHooksToJest(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bsinon\.\w+\(`, "SINON-API", "replace with the equivalent vi API"),
		},
		Imports: []string{importLine},
	}

	fromJasmine := &rewrite.Pipeline{
		Rules:   append(jsunit.JasmineToJest(), jsunit.JestToVi()...),
		Renames: jsunit.JasmineStructureToJest(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bjasmine\.\w+\(`, "JASMINE-API", "replace with the equivalent vi API"),
		},
		Imports: []string{importLine},
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("chai", "sinon", "@jest/globals"),
		Rules: append(append(jsunit.ChaiToJest(), jsunit.SinonToJest()...),
			jsunit.JestToVi()...),
		Renames: jsunit.MochaHooksToJest(),
		Imports: []string{importLine},
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkJest:    fromJest,
			adapter.FrameworkMocha:   fromMocha,
			adapter.FrameworkJasmine: fromJasmine,
		},
		Generic: generic,
	}
}

func (a *Adapter) Metadata() adapter.Metadata {
	return adapter.Metadata{
		Name:     frameworkName,
		Language: ir.LanguageTypeScript,
		Paradigm: adapter.ParadigmUnit,
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
