// Package convert wires adapters together: a factory that validates a
// (from, to) framework pair, a single-file Converter, and a batch
// orchestrator that walks a directory tree and converts every test file
// it can classify.
package convert

import (
	"errors"
	"fmt"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/score"
)

var (
	// ErrSameFramework is returned when source and target name the same framework.
	ErrSameFramework = errors.New("convert: source and target framework are identical")
	// ErrUnknownFramework is returned when no adapter is registered under a name.
	ErrUnknownFramework = errors.New("convert: unknown framework")
	// ErrParadigmMismatch is returned for unit<->e2e conversion requests.
	ErrParadigmMismatch = errors.New("convert: paradigm mismatch")
)

// Status classifies a single file conversion for reporting.
type Status string

const (
	// StatusConverted marks a clean conversion: high confidence, no TODO markers.
	StatusConverted Status = "converted"
	// StatusWarning marks a conversion that needs human review.
	StatusWarning Status = "warning"
	// StatusFailed marks a file that could not be read or converted at all.
	// The converter itself never produces it; the batch orchestrator does.
	StatusFailed Status = "failed"
)

// Result is the outcome of converting one source file.
type Result struct {
	// Output is the converted source text.
	Output string
	// Confidence estimates 0..100 how faithfully Output preserves the
	// source file's test intent.
	Confidence int
	// Status is StatusConverted or StatusWarning.
	Status Status
	// Todos lists TODO markers injected for unconvertible constructs.
	Todos []string
	// Warnings lists lossy-but-converted constructs.
	Warnings []string
}

// Converter converts test files from one framework to another. Stateless
// after construction; safe for concurrent use.
type Converter struct {
	from adapter.Adapter
	to   adapter.Adapter
}

// New returns a converter for the (from, to) framework pair using the
// default adapter registry. Invalid pairs fail here, before any parse or
// emit work: identical frameworks, unregistered names, and conversion
// across paradigms are caller mistakes, not content problems.
func New(from, to string) (*Converter, error) {
	return NewWithRegistry(adapter.DefaultRegistry(), from, to)
}

// NewWithRegistry is New against an explicit registry.
func NewWithRegistry(registry *adapter.Registry, from, to string) (*Converter, error) {
	if from == to {
		return nil, fmt.Errorf("%w: %q", ErrSameFramework, from)
	}

	source := registry.Find(from)
	if source == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, from)
	}
	target := registry.Find(to)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, to)
	}

	sourceMeta := source.Metadata()
	targetMeta := target.Metadata()
	if sourceMeta.Paradigm != targetMeta.Paradigm {
		return nil, fmt.Errorf("%w: %s is a %s framework, %s is a %s framework",
			ErrParadigmMismatch, from, sourceMeta.Paradigm, to, targetMeta.Paradigm)
	}

	return &Converter{from: source, to: target}, nil
}

// Source returns the source framework's metadata.
func (c *Converter) Source() adapter.Metadata { return c.from.Metadata() }

// Target returns the target framework's metadata.
func (c *Converter) Target() adapter.Metadata { return c.to.Metadata() }

// Convert converts one file's source text. It never fails: unparseable
// lines pass through as raw code and unconvertible constructs degrade to
// TODO markers, reflected in the confidence score and status.
func (c *Converter) Convert(source string) Result {
	file := c.from.Parse(source)
	emitted := c.to.Emit(file, source)

	confidence := score.File(file, emitted.Output, c.to.Metadata().Name)

	status := StatusConverted
	if score.BucketFor(confidence) != score.BucketHigh || len(emitted.Todos) > 0 {
		status = StatusWarning
	}

	return Result{
		Output:     emitted.Output,
		Confidence: confidence,
		Status:     status,
		Todos:      emitted.Todos,
		Warnings:   emitted.Warnings,
	}
}
