package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/adapters/fs"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openStore()
		if err != nil {
			return err
		}

		notes, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing notes: %w", err)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			s, err := fs.SerializerFor("json")
			if err != nil {
				return err
			}
			data, err := s.Serialize(notes)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		if len(notes) == 0 && !settings.cfg.Styled {
			fmt.Fprintln(out, "No notes found.")
			return nil
		}
		return renderer().Render(out, notes)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
