package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dateline/internal/logging"
	"dateline/internal/pipeline"
)

var rewriteTimeout time.Duration

// rewriteCmd represents the rewrite command
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Rewrite pasted copy into publishable prose via an LLM",
	Long: `Rewrite sends article copy through the configured LLM provider and
prints the rewritten text to stdout.

The copy is ALWAYS redacted first: tenant names and explicit dates are
stripped before any prompt leaves the process.

Example:
  dateline rewrite paste.txt --llm-provider openai
  pbpaste | dateline rewrite --tenant "Kaburlu News" --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().StringVar(&tenantName, "tenant", "", "tenant display name to redact")
	rewriteCmd.Flags().StringVar(&tenantNative, "tenant-native", "", "tenant native-script name to redact")
	rewriteCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	rewriteCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	rewriteCmd.Flags().DurationVar(&rewriteTimeout, "timeout", 2*time.Minute, "rewrite timeout")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rewriteTimeout)
	defer cancel()

	raw, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := buildParseConfig()
	if err != nil {
		return err
	}
	if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
		return err
	}

	log := logging.New(verbose)
	p := pipeline.NewPipeline(cfg, log)
	if !p.RewriteEnabled() {
		return fmt.Errorf("LLM provider %q failed to initialize", llmProvider)
	}

	rewritten, err := p.RewriteText(ctx, raw)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	fmt.Println(rewritten)
	return nil
}
