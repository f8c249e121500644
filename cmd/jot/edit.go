package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var editCmd = &cobra.Command{
	Use:   "edit [number] [text...]",
	Short: "Replace the text of a note",
	Long:  `Edit replaces note number N (as shown by list) and refreshes its timestamp.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseNumber(args[0])
		if err != nil {
			return err
		}

		svc, err := openStore()
		if err != nil {
			return err
		}

		note, err := svc.Update(cmd.Context(), n-1, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated note %d: %s\n", n, note.Text)
		return nil
	},
}

// parseNumber reads a 1-based note number typed by the user.
func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, core.InputError("not a note number: %q", s)
	}
	return n, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
