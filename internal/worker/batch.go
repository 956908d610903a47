package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lawtools/actlens/internal/pipeline"
)

// Analyzer runs the full pipeline for one document. Satisfied by
// *pipeline.Pipeline; narrowed to an interface so batch tests can stub it.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path, outDir string) (*pipeline.Result, error)
}

// AnalyzeJob is one document analysis task
type AnalyzeJob struct {
	Path     string
	OutDir   string
	Analyzer Analyzer
}

// Execute runs the analysis for the job's document.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeFile(ctx, j.Path, j.OutDir)
	return &FileResult{Path: j.Path, Result: result, Error: err}
}

// FileResult is the outcome of analyzing one document
type FileResult struct {
	Path   string
	Result *pipeline.Result
	Error  error
}

// Err returns the analysis error, if any.
func (r *FileResult) Err() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently. Each document
// gets its own subdirectory under the output directory, named after the
// input file.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessPaths analyzes the given documents concurrently and returns one
// result per input, sorted by path for stable reporting.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, outDir string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:     path,
			OutDir:   filepath.Join(outDir, docSlug(path)),
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()
	fileResults := make([]*FileResult, len(results))
	seen := make(map[string]bool, len(results))
	for i, result := range results {
		fr := result.(*FileResult)
		fileResults[i] = fr
		seen[fr.Path] = true
	}

	// A cancelled context makes the pool drop queued jobs; documents that
	// never ran still get a result so the batch summary accounts for every
	// input.
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		err := ctx.Err()
		if err == nil {
			err = errors.New("not processed")
		} else {
			err = fmt.Errorf("not processed: %w", err)
		}
		fileResults = append(fileResults, &FileResult{Path: path, Error: err})
	}

	sort.Slice(fileResults, func(i, j int) bool {
		return fileResults[i].Path < fileResults[j].Path
	})
	return fileResults
}

// CollectInputs resolves the batch input argument to document paths. A
// directory yields its PDF and HTML files; anything else is read as a list
// file, one path per line, with blank lines and # comments skipped and
// duplicates dropped.
func CollectInputs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return listDocuments(input)
	}
	return readListFile(input)
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func readListFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan list file: %w", err)
	}
	return paths, nil
}

// docSlug derives a filesystem-safe output directory name from an input
// path.
func docSlug(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "document"
	}
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}
