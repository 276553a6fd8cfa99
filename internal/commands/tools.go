package commands

import (
	"encoding/json"

	"transaction-insights/internal/services"

	"github.com/spf13/cobra"
)

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the insight tool catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd, services.DefaultToolRegistry())
		},
	}
}

func runTools(cmd *cobra.Command, catalog services.ToolCatalogInterface) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(catalog.ToolCatalog())
}
