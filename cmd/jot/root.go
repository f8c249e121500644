package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/config"
	"github.com/aretw0/jot/internal/logging"
	"github.com/aretw0/jot/internal/view"
)

var (
	fileFlag   string
	configFlag string
	verbose    bool
	styled     bool
)

// settings is filled by the root PersistentPreRunE for every command.
var settings struct {
	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A tiny note store kept in one JSON file",
	Long: `Jot keeps short text notes in a single JSON array on disk.
Run it without arguments for the interactive menu, or use the subcommands
for one-shot edits.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("file") {
			cfg.File = fileFlag
		}
		if cmd.Flags().Changed("styled") {
			cfg.Styled = styled
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		logger, closer, err := logging.New(cmd.ErrOrStderr(), logging.Options{
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			File:    cfg.LogFile,
			NoColor: color.NoColor,
		})
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		settings.cfg = cfg
		settings.logger = logger
		settings.logCloser = closer
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// openStore builds the service for the configured store. Without an
// explicit path the nearest notes.json above the working directory is used.
func openStore(opts ...jot.Option) (*jot.Service, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	path := jot.ResolveStorePath(settings.cfg.File, wd, jot.DefaultFileName)

	logger := settings.logger
	base := []jot.Option{
		jot.WithLogger(logger),
		jot.WithAtomicWrites(settings.cfg.AtomicWrites),
		jot.WithCorruptPolicy(settings.cfg.OnCorrupt),
		jot.WithWatcherErrorHandler(func(err error) {
			logger.Error("watcher failed", "error", err)
		}),
	}
	return jot.New(path, append(base, opts...)...)
}

func renderer() view.Renderer {
	return view.New(settings.cfg.Styled)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command tree and releases the log file whether or not
// the command failed.
func execute() error {
	err := rootCmd.Execute()
	if settings.logCloser != nil {
		if cerr := settings.logCloser.Close(); cerr != nil && err == nil {
			err = cerr
		}
		settings.logCloser = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Notes file (default: notes.json in this directory or the nearest parent that has one)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: jot.yaml or $JOT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&styled, "styled", false, "Render lists with colors and previews")
}
