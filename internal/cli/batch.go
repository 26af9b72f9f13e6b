package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"dateline/internal/logging"
	"dateline/internal/pipeline"
	"dateline/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Parse multiple pasted-copy files in parallel",
	Long: `Batch parses many pastes concurrently:
- Point it at a directory of .txt files, or a list file (one path per line)
- Pastes are parsed in parallel with a configurable worker count
- Each paste produces a JSON and Markdown draft in the output directory

Example:
  dateline batch ./pastes
  dateline batch paths.txt --concurrency 8 --output-dir ./drafts
  dateline batch ./pastes --tenant "Kaburlu News" --resolve`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./dateline-drafts", "output directory for drafts")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared flags with parse
	batchCmd.Flags().StringVar(&tenantName, "tenant", "", "tenant display name to scrub from output")
	batchCmd.Flags().StringVar(&tenantNative, "tenant-native", "", "tenant native-script name to scrub")
	batchCmd.Flags().BoolVar(&resolvePlace, "resolve", false, "resolve dateline places via location search")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the location-search cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown drafts")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM headline suggestions")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildParseConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.ParseWorkers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	paths, err := collectPaths(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paste files found in %s", input)
	}

	log := logging.New(verbose)
	p := pipeline.NewPipeline(cfg, log)
	processor := worker.NewBatchProcessor(p, concurrency)

	log.Debug().Int("files", len(paths)).Int("workers", concurrency).Msg("starting batch parse")

	results := processor.ProcessPaths(ctx, paths)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		slug := outputSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Result, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Result, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		successCount++
		title := result.Result.Draft.Title
		if title == "" {
			title = "(no title)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s: %s\n", result.Path, title)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d pastes\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)

	return nil
}

// collectPaths expands a directory into its .txt/.md files, or reads a
// list file of paths
func collectPaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return worker.ReadPathsFromFile(input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".txt", ".md", ".text":
			paths = append(paths, filepath.Join(input, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
