package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the note store as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openStore()
		if err != nil {
			return err
		}

		// Loading fills in the counters reported by the store.
		notes, err := svc.List(cmd.Context())
		if err != nil {
			settings.logger.Warn("store could not be loaded", "error", err)
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{
			"component": svc.ComponentType(),
			"notes":     len(notes),
			"state":     svc.State(),
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
