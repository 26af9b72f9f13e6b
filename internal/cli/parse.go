package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"dateline/internal/logging"
	"dateline/internal/model"
	"dateline/internal/pipeline"
)

var (
	outJSON       string
	outMD         string
	parseTimeout  time.Duration
	tenantName    string
	tenantNative  string
	resolvePlace  bool
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
	placesBaseURL string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse pasted news copy into a structured draft",
	Long: `Parse reads pasted copy from a file (or stdin) and extracts:
- Title and subtitle (the first lines above the date line)
- Up to 5 highlight bullets
- The body (everything after the date line)
- The dateline place, ready for location search

Example:
  dateline parse paste.txt
  dateline parse paste.txt --json draft.json --md draft.md
  pbpaste | dateline parse --tenant "Kaburlu News"
  dateline parse paste.txt --resolve --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	// Output flags
	parseCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	parseCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	parseCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown drafts")

	// Tenant flags
	parseCmd.Flags().StringVar(&tenantName, "tenant", "", "tenant display name to scrub from output")
	parseCmd.Flags().StringVar(&tenantNative, "tenant-native", "", "tenant native-script name to scrub")

	// Place resolution flags
	parseCmd.Flags().BoolVar(&resolvePlace, "resolve", false, "resolve the dateline place via location search")
	parseCmd.Flags().StringVar(&placesBaseURL, "places-url", "", "location-search endpoint (default: Nominatim)")
	parseCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the location-search cache")
	parseCmd.Flags().DurationVar(&parseTimeout, "timeout", 2*time.Minute, "overall timeout including enrichment calls")

	// LLM flags
	parseCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM headline suggestions")
	parseCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	parseCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
	defer cancel()

	raw, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := buildParseConfig()
	if err != nil {
		return err
	}

	log := logging.New(verbose)
	p := pipeline.NewPipeline(cfg, log)

	result, err := p.ParseText(ctx, raw)
	if err != nil {
		return err
	}

	if err := p.RenderResult(result, outJSON, outMD); err != nil {
		return err
	}

	p.Summary(result)
	return nil
}

// buildParseConfig assembles configuration from flags and the config file
func buildParseConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	applyTenant(cfg, tenantName, tenantNative)

	cfg.Cache.Enabled = !noCache
	if cfg.Cache.Enabled {
		cfg.Cache.Dir = defaultCacheDir()
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	cfg.Places.Enabled = resolvePlace
	if placesBaseURL != "" {
		cfg.Places.BaseURL = placesBaseURL
	}

	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
