// Package jasmine implements the Jasmine framework adapter.
package jasmine

import (
	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/adapter/jsparse"
	"github.com/hamlet-dev/hamlet/pkg/adapter/rewrite"
	"github.com/hamlet-dev/hamlet/pkg/adapters/shared/jsunit"
	"github.com/hamlet-dev/hamlet/pkg/ir"
)

const frameworkName = adapter.FrameworkJasmine

func init() {
	adapter.Register(New())
}

var signatures = []adapter.Signature{
	adapter.Sig(`\bjasmine\.(createSpy|createSpyObj|clock|any|objectContaining|arrayContaining|stringMatching)\(`, 50),
	adapter.Sig(`\.and\.(returnValue|callFake|callThrough|throwError)\(`, 35),
	adapter.Sig(`\b(fdescribe|fit|xdescribe|xit)\(`, 25),
	adapter.Sig(`^\s*spyOn\(|[^.]\bspyOn\(`, 20),
	adapter.Sig(`\b(describe|it)\(`, 10),
	adapter.Sig(`\bjest\.`, -35),
	adapter.Sig(`\bvi\.`, -35),
	adapter.Sig(`\bsinon\.`, -25),
	adapter.Sig(`\bcy\.`, -30),
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
				jsunit.MockClassifier("jasmine"),
				jsunit.SpyOnClassifier(),
			},
		},
	}
	a.pipelines = buildPipelines()
	return a
}

func buildPipelines() rewrite.PipelineSet {
	fromJest := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@jest/globals"),
		Rules:        jsunit.JestToJasmine(),
		Renames:      jsunit.JestStructureToJasmine(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bjest\.\w+\(`, "JEST-API", "replace with the equivalent jasmine API"),
		},
	}

	fromVitest := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("vitest"),
		Rules:        append(jsunit.ViToJest(), jsunit.JestToJasmine()...),
		Renames:      jsunit.JestStructureToJasmine(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bvi\.\w+\(`, "VI-API", "replace with the equivalent jasmine API"),
		},
	}

	fromMocha := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("chai", "sinon", "sinon-chai", "mocha"),
		Rules: append(append(jsunit.ChaiToJest(), jsunit.SinonToJest()...),
			jsunit.JestToJasmine()...),
		Renames: jsunit.MochaHooksToJest(),
		Fallbacks: []rewrite.Fallback{
			jsunit.Fallback(`\bsinon\.\w+\(`, "SINON-API", "replace with the equivalent jasmine API"),
		},
	}

	generic := &rewrite.Pipeline{
		StripImports: jsunit.ImportStrips("@jest/globals", "vitest", "chai", "sinon"),
		Rules: append(append(jsunit.ViToJest(), jsunit.ChaiToJest()...),
			jsunit.JestToJasmine()...),
		Renames: jsunit.JestStructureToJasmine(),
	}

	return rewrite.PipelineSet{
		Pipelines: map[string]*rewrite.Pipeline{
			adapter.FrameworkJest:   fromJest,
			adapter.FrameworkVitest: fromVitest,
			adapter.FrameworkMocha:  fromMocha,
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
			Globals: []string{"describe", "it", "expect", "jasmine", "spyOn", "beforeAll", "afterAll", "beforeEach", "afterEach"},
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
