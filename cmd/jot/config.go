package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(settings.cfg); err != nil {
			return err
		}
		if err := encoder.Close(); err != nil {
			return err
		}

		help, err := config.Describe()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", help)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
