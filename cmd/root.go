package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptswipe/internal/config"
	"github.com/abhisek/conceptswipe/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "conceptswipe",
	Short: "Swipe through concept cards extracted from your documents",
	Long: "ConceptSwipe turns a document into a deck of concept cards and lets you\n" +
		"triage them with swipes: right to keep, left to skip, up to save as a note.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/conceptswipe/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off (overrides log.level)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config selected by --config and applies
// --log-level on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if _, _, err := logging.ParseLevel(lvl); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.Log.Level = strings.ToLower(lvl)
	}
	return cfg, nil
}

// setup loads config and installs the logger. The returned closer
// flushes the log file.
func setup(cmd *cobra.Command) (*environment, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("set up logging: %w", err)
	}
	return &environment{cfg: cfg, logger: logger}, closer, nil
}
