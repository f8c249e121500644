package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a note",
	Long:  `Add appends a note stamped with the current time. Arguments are joined with spaces.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openStore()
		if err != nil {
			return err
		}

		note, err := svc.Add(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		settings.logger.Debug("note added", "timestamp", note.Timestamp)
		fmt.Fprintln(cmd.OutOrStdout(), "Note added!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
