package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [number]",
	Short: "Delete a note",
	Long:  `Delete removes note number N (as shown by list). Later notes move up by one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseNumber(args[0])
		if err != nil {
			return err
		}

		svc, err := openStore()
		if err != nil {
			return err
		}

		removed, err := svc.Remove(cmd.Context(), n-1)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted note: %s\n", removed.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
