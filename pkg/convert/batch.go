package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	"github.com/hamlet-dev/hamlet/pkg/score"
)

const (
	// DefaultWorkers indicates that the batch should use GOMAXPROCS as
	// the worker count.
	DefaultWorkers = 0
	// DefaultTimeout is the default batch timeout duration.
	DefaultTimeout = 5 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
	// DefaultMaxFileSize is the default maximum file size (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024
	// DefaultMinDetectScore is the detection score below which a file is
	// skipped as unclassifiable.
	DefaultMinDetectScore = 25
)

// DefaultSkipPatterns contains directory names skipped during discovery.
var DefaultSkipPatterns = []string{
	"node_modules",
	".git",
	"vendor",
	"dist",
	"build",
	".next",
	"coverage",
	".cache",
}

var (
	// ErrBatchCancelled is returned when a batch run is cancelled via context.
	ErrBatchCancelled = errors.New("convert: batch cancelled")
	// ErrBatchTimeout is returned when a batch run exceeds its timeout.
	ErrBatchTimeout = errors.New("convert: batch timeout")
)

// FileReport is the per-file entry of a batch report.
type FileReport struct {
	// Path is the file path relative to the batch root, slash-separated.
	Path string `json:"path"`
	// Framework is the detected (or pre-tagged) source framework.
	Framework string `json:"framework"`
	// Confidence is the 0..100 conversion confidence. Zero for failures.
	Confidence int `json:"confidence"`
	// Status is converted, warning, or failed.
	Status Status `json:"status"`
	// Todos lists TODO marker descriptions injected into this file.
	Todos []string `json:"todos,omitempty"`
	// Warnings lists lossy-but-converted constructs.
	Warnings []string `json:"warnings,omitempty"`
}

// BatchError is a non-fatal error attributed to one phase of a batch run.
type BatchError struct {
	Err  error
	Path string
	// Phase is one of "discovery", "read", "classify", "write".
	Phase string
}

// Error implements the error interface.
func (e BatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// Summary aggregates a batch run.
type Summary struct {
	// RunID uniquely identifies this batch run.
	RunID string `json:"runId"`
	// Target is the target framework name.
	Target string `json:"target"`
	// FilesScanned is the number of test file candidates discovered.
	FilesScanned int `json:"filesScanned"`
	// Converted counts files with StatusConverted.
	Converted int `json:"converted"`
	// Warnings counts files with StatusWarning.
	Warnings int `json:"warnings"`
	// Failed counts files with StatusFailed.
	Failed int `json:"failed"`
	// Skipped counts candidates left unconverted: unclassifiable, already
	// in the target framework, or in an incompatible paradigm.
	Skipped int `json:"skipped"`
	// Buckets tallies reports per confidence bucket.
	Buckets map[score.Bucket]int `json:"buckets"`
	// Duration is the total batch duration.
	Duration time.Duration `json:"duration"`
}

// BatchResult is the outcome of a batch run.
type BatchResult struct {
	// Files contains one report per converted or failed file, sorted by path.
	Files []FileReport `json:"files"`
	// Errors contains non-fatal errors encountered during the run.
	Errors []BatchError `json:"-"`
	// Summary aggregates the run.
	Summary Summary `json:"summary"`
}

// Batch converts every test file under a directory tree into one target
// framework and produces a structured report. Per-file failures are
// recorded, never fatal.
type Batch struct {
	target  adapter.Adapter
	options *BatchOptions

	mu         sync.Mutex
	converters map[string]*Converter
}

// NewBatch creates a batch converter targeting the named framework.
// With WithFramework set, the (source, target) pair is validated here so
// an impossible pairing fails before any file is touched.
func NewBatch(target string, opts ...BatchOption) (*Batch, error) {
	options := &BatchOptions{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	targetAdapter := options.Registry.Find(target)
	if targetAdapter == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, target)
	}

	b := &Batch{
		target:     targetAdapter,
		options:    options,
		converters: make(map[string]*Converter),
	}

	if options.Framework != "" {
		if _, err := b.converterFor(options.Framework); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Run discovers test files under root, converts them in parallel, and
// returns the report. When OutputDir is set, converted files are written
// there mirroring the source tree; otherwise the run is a dry run.
func (b *Batch) Run(ctx context.Context, root string) (*BatchResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, b.options.Timeout)
	defer cancel()

	result := &BatchResult{
		Files:  []FileReport{},
		Errors: []BatchError{},
		Summary: Summary{
			RunID:   uuid.NewString(),
			Target:  b.target.Metadata().Name,
			Buckets: make(map[score.Bucket]int),
		},
	}

	files, errs := b.discover(ctx, root)
	for _, err := range errs {
		result.Errors = append(result.Errors, BatchError{Err: err, Phase: "discovery"})
	}
	result.Summary.FilesScanned = len(files)

	if len(files) > 0 {
		b.convertParallel(ctx, root, files, result)
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	for _, report := range result.Files {
		switch report.Status {
		case StatusConverted:
			result.Summary.Converted++
			result.Summary.Buckets[score.BucketFor(report.Confidence)]++
		case StatusWarning:
			result.Summary.Warnings++
			result.Summary.Buckets[score.BucketFor(report.Confidence)]++
		case StatusFailed:
			result.Summary.Failed++
			result.Summary.Buckets[score.BucketFailed]++
		}
	}
	result.Summary.Skipped = result.Summary.FilesScanned - len(result.Files)
	result.Summary.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrBatchTimeout
		}
		if errors.Is(err, context.Canceled) {
			return result, ErrBatchCancelled
		}
	}

	return result, nil
}

// converterFor returns the cached converter for one source framework,
// building it on first use.
func (b *Batch) converterFor(from string) (*Converter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if conv, ok := b.converters[from]; ok {
		return conv, nil
	}
	conv, err := NewWithRegistry(b.options.Registry, from, b.target.Metadata().Name)
	if err != nil {
		return nil, err
	}
	b.converters[from] = conv
	return conv, nil
}

func (b *Batch) discover(ctx context.Context, root string) ([]string, []error) {
	skipSet := buildSkipSet(append(DefaultSkipPatterns, b.options.ExcludePatterns...))

	outputDir := ""
	if b.options.OutputDir != "" {
		if abs, err := filepath.Abs(b.options.OutputDir); err == nil {
			outputDir = abs
		}
	}

	var (
		files []string
		errs  []error
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if walkErr != nil {
			errs = append(errs, fmt.Errorf("access error at %s: %w", path, walkErr))
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, root, skipSet) {
				return filepath.SkipDir
			}
			// Never re-convert our own output.
			if outputDir != "" {
				if abs, err := filepath.Abs(path); err == nil && abs == outputDir {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !isTestFileCandidate(path) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("compute relative path for %s: %w", path, err))
			return nil
		}

		if len(b.options.Patterns) > 0 && !matchesAnyPattern(relPath, b.options.Patterns) {
			return nil
		}

		if b.options.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				errs = append(errs, fmt.Errorf("stat %s: %w", path, err))
				return nil
			}
			if info.Size() > b.options.MaxFileSize {
				return nil
			}
		}

		files = append(files, relPath)
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			errs = append(errs, err)
		}
	}

	return files, errs
}

func (b *Batch) convertParallel(ctx context.Context, root string, files []string, result *BatchResult) {
	workers := b.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			report, batchErr := b.convertFile(gCtx, root, file)

			mu.Lock()
			defer mu.Unlock()
			if batchErr != nil {
				result.Errors = append(result.Errors, *batchErr)
			}
			if report != nil {
				result.Files = append(result.Files, *report)
			}
			return nil
		})
	}

	_ = g.Wait()
}

// convertFile converts a single file. A nil report with a nil error means
// the file was skipped.
func (b *Batch) convertFile(ctx context.Context, root, relPath string) (*FileReport, *BatchError) {
	slashPath := filepath.ToSlash(relPath)

	if err := ctx.Err(); err != nil {
		return nil, &BatchError{Err: err, Path: slashPath, Phase: "read"}
	}

	content, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		return &FileReport{
			Path:   slashPath,
			Status: StatusFailed,
		}, &BatchError{Err: err, Path: slashPath, Phase: "read"}
	}
	source := string(content)

	from := b.options.Framework
	var detectWarnings []string
	if from == "" {
		candidates := b.options.Registry.DetectAll(source)
		if len(candidates) == 0 || candidates[0].Score < b.options.MinDetectScore {
			return nil, nil
		}
		from = candidates[0].Framework
		if len(candidates) > 1 && candidates[0].Score-candidates[1].Score < 10 {
			detectWarnings = append(detectWarnings, fmt.Sprintf(
				"ambiguous framework detection: %s (%d) vs %s (%d)",
				candidates[0].Framework, candidates[0].Score,
				candidates[1].Framework, candidates[1].Score))
		}
	}

	if from == b.target.Metadata().Name {
		return nil, nil
	}

	conv, err := b.converterFor(from)
	if err != nil {
		// Incompatible paradigm or unknown framework: leave the file alone.
		return nil, &BatchError{Err: err, Path: slashPath, Phase: "classify"}
	}

	res := conv.Convert(source)

	if b.options.OutputDir != "" {
		outPath := filepath.Join(b.options.OutputDir, relPath)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return &FileReport{
				Path:      slashPath,
				Framework: from,
				Status:    StatusFailed,
			}, &BatchError{Err: err, Path: slashPath, Phase: "write"}
		}
		if err := os.WriteFile(outPath, []byte(res.Output), 0o644); err != nil {
			return &FileReport{
				Path:      slashPath,
				Framework: from,
				Status:    StatusFailed,
			}, &BatchError{Err: err, Path: slashPath, Phase: "write"}
		}
	}

	return &FileReport{
		Path:       slashPath,
		Framework:  from,
		Confidence: res.Confidence,
		Status:     res.Status,
		Todos:      res.Todos,
		Warnings:   append(detectWarnings, res.Warnings...),
	}, nil
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}

func shouldSkipDir(path, root string, skipSet map[string]bool) bool {
	if path == root {
		return false
	}
	return skipSet[filepath.Base(path)]
}

func isTestFileCandidate(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs":
		return isJSTestFile(path)
	case ".java":
		return isJavaTestFile(path)
	default:
		return false
	}
}

func isJSTestFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))

	if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") || strings.Contains(base, ".cy.") {
		return true
	}

	normalized := filepath.ToSlash(path)
	if strings.Contains(normalized, "/__fixtures__/") || strings.Contains(normalized, "/__mocks__/") {
		return false
	}

	for _, dir := range []string{"/__tests__/", "/test/", "/tests/", "/e2e/", "/cypress/", "/integration/"} {
		if strings.Contains(normalized, dir) {
			return true
		}
	}
	return false
}

func isJavaTestFile(path string) bool {
	name := strings.TrimSuffix(filepath.Base(path), ".java")

	if strings.HasSuffix(name, "Test") || strings.HasSuffix(name, "Tests") {
		return true
	}
	return strings.Contains(filepath.ToSlash(path), "/src/test/")
}

func matchesAnyPattern(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// Run is a convenience wrapper: build a batch and run it in one call.
func Run(ctx context.Context, root, target string, opts ...BatchOption) (*BatchResult, error) {
	batch, err := NewBatch(target, opts...)
	if err != nil {
		return nil, err
	}
	return batch.Run(ctx, root)
}
