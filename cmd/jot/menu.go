package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/jot/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu (the default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func runMenu(cmd *cobra.Command) error {
	svc, err := openStore()
	if err != nil {
		return err
	}

	m := menu.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithRenderer(renderer()),
		menu.WithLogger(settings.logger.With("component", "menu")),
	)
	return m.Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
