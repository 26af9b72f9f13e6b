package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dateline/internal/model"
	"dateline/internal/redact"
)

// redactCmd represents the redact command
var redactCmd = &cobra.Command{
	Use:   "redact [file]",
	Short: "Strip tenant names and dates from copy",
	Long: `Redact runs the sensitive-text stripper standalone and prints the
result to stdout. Useful for inspecting exactly what would be sent to
an external rewriting service.

Example:
  dateline redact paste.txt --tenant "Kaburlu News"
  pbpaste | dateline redact --tenant "Kaburlu News" --tenant-native "కబుర్లు"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRedact,
}

func init() {
	rootCmd.AddCommand(redactCmd)

	redactCmd.Flags().StringVar(&tenantName, "tenant", "", "tenant display name to redact")
	redactCmd.Flags().StringVar(&tenantNative, "tenant-native", "", "tenant native-script name to redact")
}

func runRedact(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args)
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	applyTenant(cfg, tenantName, tenantNative)

	r := redact.NewRedactor(cfg.Tenant)
	fmt.Println(r.Redact(raw))
	return nil
}
