package convert

import (
	"time"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
)

// BatchOptions configures batch behavior.
type BatchOptions struct {
	// ExcludePatterns specifies directory names to skip during file
	// discovery. Combined with DefaultSkipPatterns.
	ExcludePatterns []string

	// Framework pre-tags every discovered file with a source framework,
	// bypassing detection. Empty means detect per file.
	Framework string

	// MaxFileSize is the maximum file size in bytes to process. Larger
	// files are skipped.
	MaxFileSize int64

	// MinDetectScore is the detection score below which a file is
	// considered unclassifiable and skipped.
	MinDetectScore int

	// OutputDir is where converted files are written, mirroring the
	// source tree. Empty means dry run: report only, no writes.
	OutputDir string

	// Patterns specifies glob patterns to filter test files. Empty means
	// all test file candidates are processed.
	Patterns []string

	// Registry is the adapter registry to use. If nil, uses
	// adapter.DefaultRegistry().
	Registry *adapter.Registry

	// Timeout is the maximum duration for the entire batch run. Zero or
	// negative values use DefaultTimeout.
	Timeout time.Duration

	// Workers specifies the number of concurrent file converters. Zero
	// or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// BatchOption is a functional option for configuring Batch.
type BatchOption func(*BatchOptions)

// WithWorkers sets the number of concurrent file converters.
// Negative values are ignored.
func WithWorkers(n int) BatchOption {
	return func(o *BatchOptions) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithTimeout sets the batch timeout duration. Negative values are ignored.
func WithTimeout(d time.Duration) BatchOption {
	return func(o *BatchOptions) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithPatterns sets glob patterns to filter test files.
func WithPatterns(patterns []string) BatchOption {
	return func(o *BatchOptions) {
		o.Patterns = patterns
	}
}

// WithExcludePatterns adds directory patterns to skip during discovery.
func WithExcludePatterns(patterns []string) BatchOption {
	return func(o *BatchOptions) {
		o.ExcludePatterns = patterns
	}
}

// WithMaxFileSize sets the maximum file size to process.
func WithMaxFileSize(size int64) BatchOption {
	return func(o *BatchOptions) {
		if size >= 0 {
			o.MaxFileSize = size
		}
	}
}

// WithFramework pre-tags all files with a known source framework,
// bypassing per-file detection. Useful when an external classifier has
// already identified the files.
func WithFramework(name string) BatchOption {
	return func(o *BatchOptions) {
		o.Framework = name
	}
}

// WithOutputDir sets the directory converted files are written to.
// Without it the batch is a dry run.
func WithOutputDir(dir string) BatchOption {
	return func(o *BatchOptions) {
		o.OutputDir = dir
	}
}

// WithMinDetectScore sets the detection score below which files are
// skipped as unclassifiable.
func WithMinDetectScore(n int) BatchOption {
	return func(o *BatchOptions) {
		if n >= 0 {
			o.MinDetectScore = n
		}
	}
}

// WithRegistry sets the adapter registry to use.
func WithRegistry(registry *adapter.Registry) BatchOption {
	return func(o *BatchOptions) {
		o.Registry = registry
	}
}

func applyDefaults(opts *BatchOptions) {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.MinDetectScore <= 0 {
		opts.MinDetectScore = DefaultMinDetectScore
	}
	if opts.Registry == nil {
		opts.Registry = adapter.DefaultRegistry()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
}
