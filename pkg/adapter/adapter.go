// Package adapter defines the plugin contract every framework adapter
// implements, plus the registry used to look adapters up by name or by
// detection score.
package adapter

import (
	"regexp"

	"github.com/hamlet-dev/hamlet/pkg/ir"
)

// Paradigm groups frameworks by testing style. Conversion is only
// supported between adapters of the same paradigm.
type Paradigm string

const (
	// ParadigmUnit covers unit/component test frameworks (Jest, Mocha, ...).
	ParadigmUnit Paradigm = "unit"
	// ParadigmE2E covers browser end-to-end frameworks (Cypress, ...).
	ParadigmE2E Paradigm = "e2e"
)

// Framework names as constants to ensure consistency.
const (
	FrameworkCypress     = "cypress"
	FrameworkJasmine     = "jasmine"
	FrameworkJest        = "jest"
	FrameworkJUnit5      = "junit5"
	FrameworkMocha       = "mocha"
	FrameworkPlaywright  = "playwright"
	FrameworkPuppeteer   = "puppeteer"
	FrameworkSelenium    = "selenium"
	FrameworkTestCafe    = "testcafe"
	FrameworkVitest      = "vitest"
	FrameworkWebdriverIO = "webdriverio"
)

// ImportSpec declares what a framework needs in scope in emitted files.
type ImportSpec struct {
	// Globals are ambient identifiers needing no import (e.g. Cypress's cy).
	Globals []string
	// Modules are import lines the framework itself requires.
	Modules []string
	// Libraries are optional companion library import lines (e.g. chai).
	Libraries []string
}

// Metadata describes an adapter's framework.
type Metadata struct {
	Name     string
	Language ir.Language
	Paradigm Paradigm
	Imports  ImportSpec
}

// EmitResult is the outcome of emitting a file into a target framework.
type EmitResult struct {
	// Output is the emitted source text. Always non-empty for non-empty
	// input: emit degrades, it never aborts.
	Output string
	// Supported is false when the emitter injected TODO markers for
	// constructs it could not express.
	Supported bool
	// Todos lists the descriptions of injected TODO markers.
	Todos []string
	// Warnings lists lossy-but-converted constructs.
	Warnings []string
}

// Adapter is the contract every framework plugin implements. Detect,
// Parse, and Emit are pure with respect to a single file: no I/O, no
// shared mutable state, safe for concurrent use.
type Adapter interface {
	// Metadata returns static framework metadata.
	Metadata() Metadata
	// Detect returns a 0..100 confidence that source belongs to this
	// framework. Weighted signature sum, clamped.
	Detect(source string) int
	// Parse converts source into an IR tree. It never fails: unrecognized
	// lines degrade to RawCode nodes.
	Parse(source string) *ir.TestFile
	// Emit produces target-framework source text from the IR tree and the
	// original source. Unconvertible constructs degrade to TODO markers.
	Emit(file *ir.TestFile, source string) EmitResult
}

// Signature is one weighted detection marker. Negative weights suppress
// false positives from sibling frameworks' markers.
type Signature struct {
	Pattern *regexp.Regexp
	Weight  int
}

// Sig builds a Signature from a pattern literal.
func Sig(pattern string, weight int) Signature {
	return Signature{Pattern: regexp.MustCompile(pattern), Weight: weight}
}

// ScoreSignatures sums the weights of matching signatures, counting each
// signature once, and clamps the result to [0,100]. Adding more of a
// framework's markers to a source never decreases its score.
func ScoreSignatures(source string, sigs []Signature) int {
	score := 0
	for _, sig := range sigs {
		if sig.Pattern.MatchString(source) {
			score += sig.Weight
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
