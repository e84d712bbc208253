// Package jest implements the Jest framework adapter.
package jest

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkJest

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`from\s+['"]@jest/globals['"]`, 50),
	adapter.Sig(`\bjest\.(fn|mock|spyOn|useFakeTimers|requireActual|resetModules)\(`, 45),
	adapter.Sig(`\.(toHaveBeenCalled|toHaveBeenCalledWith|toMatchSnapshot|toMatchObject)\(`, 20),
	adapter.Sig(`\bexpect\(.*\)\.(toBe|toEqual|toStrictEqual)\(`, 15),
	adapter.Sig(`\b(describe|it|test)\(`, 10),
	adapter.Sig(`\bvi\.`, -35),
	adapter.Sig(`from\s+['"]vitest['"]`, -40),
	adapter.Sig(`\bcy\.`, -30),
	adapter.Sig(`\bsinon\.`, -25),
	adapter.Sig(`\bjasmine\.`, -25),
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
				jsunit.MockClassifier("jest"),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	fromMocha := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("chai", "sinon", "sinon-chai", "mocha"),
		Rules:        append(jsunit.ChaiToJest(), jsunit.SinonToJest()...),
		Renames:      jsunit.MochaHooksToJest(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bsinon\.\w+\(`, "SINON-API", "replace with the equivalent jest API"),
		},
	}

	fromVitest := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("vitest"),
		Rules:        jsunit.ViToJest(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bvi\.\w+\(`, "VI-API", "replace with the equivalent jest API"),
		},
	}

	fromJasmine := &rewrite.Pipeline{
		Rules:   jsunit.JasmineToJest(),
		Renames: jsunit.JasmineStructureToJest(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bjasmine\.\w+\(`, "JASMINE-API", "replace with the equivalent jest API"),
		},
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("chai", "sinon", "vitest"),
		Rules: append(append(jsunit.ChaiToJest(), jsunit.SinonToJest()...),
			jsunit.ViToJest()...),
		Renames: jsunit.MochaHooksToJest(),
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkMocha:   fromMocha,
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
			Globals: []string{"describe", "it", "test", "expect", "jest", "beforeAll", "afterAll", "beforeEach", "afterEach"},
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
