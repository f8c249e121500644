package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/adapters/fs"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all notes in another format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := fs.SerializerFor(exportFormat)
		if err != nil {
			return err
		}

		svc, err := openStore()
		if err != nil {
			return err
		}

		notes, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing notes: %w", err)
		}

		data, err := s.Serialize(notes)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", exportFormat, err)
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		settings.logger.Info("exported notes", "count", len(notes), "format", exportFormat, "path", exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format ("+strings.Join(fs.Formats(), ", ")+")")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}
