package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"dateline/internal/pipeline"
)

// Parser defines the interface for parsing pasted copy
type Parser interface {
	ParseText(ctx context.Context, raw string) (*pipeline.ParseResult, error)
}

// ParseJob parses one pasted-copy file
type ParseJob struct {
	Path   string
	Parser Parser
}

// Execute reads the file and runs it through the parser
func (j *ParseJob) Execute(ctx context.Context) Result {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &ParseJobResult{
			Path:  j.Path,
			Error: fmt.Errorf("read file: %w", err),
		}
	}

	result, err := j.Parser.ParseText(ctx, string(data))
	if err != nil {
		return &ParseJobResult{
			Path:  j.Path,
			Error: err,
		}
	}

	return &ParseJobResult{
		Path:   j.Path,
		Result: result,
	}
}

// ParseJobResult represents the result of a parse job
type ParseJobResult struct {
	Path   string
	Result *pipeline.ParseResult
	Error  error
}

// GetError returns the error from the parse result
func (r *ParseJobResult) GetError() error {
	return r.Error
}

// BatchProcessor parses multiple pasted-copy files concurrently
type BatchProcessor struct {
	parser      Parser
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(parser Parser, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		parser:      parser,
		concurrency: concurrency,
	}
}

// ProcessPaths parses the given files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ParseJobResult {
	if len(paths) == 0 {
		return []*ParseJobResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ParseJob{
			Path:   path,
			Parser: b.parser,
		})
	}

	results := pool.Wait()

	parseResults := make([]*ParseJobResult, len(results))
	for i, result := range results {
		parseResults[i] = result.(*ParseJobResult)
	}

	return parseResults
}

// ProcessList reads file paths from a list file and parses them concurrently
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*ParseJobResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read path list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a file (one per line)
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
