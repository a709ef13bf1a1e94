package main

import (
	"fmt"

	"vocabwidget/internal/config"
	"vocabwidget/internal/output"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "vocab-widget",
	Short:        "Desktop flashcard widget for today's vocabulary",
	Long:         "Shows the vocabulary generated by english_vocab_app one card at a time in a small always-on-top window.",
	SilenceUsage: true,
	RunE:         runWidget,
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file to load before reading configuration")
	rootCmd.PersistentFlags().String("vocab-path", "", "Vocabulary file (overrides VOCAB_PATH and VOCAB_JSON)")
	rootCmd.PersistentFlags().String("state-file", "", "Window state file (overrides WIDGET_STATE_FILE)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for show and state: yaml, json")
}

// loadConfig reads configuration and applies command-line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if path, _ := cmd.Flags().GetString("vocab-path"); path != "" {
		cfg.VocabPath = path
	}
	if path, _ := cmd.Flags().GetString("state-file"); path != "" {
		cfg.StateFile = path
	}

	return cfg, nil
}

// newLogger builds the production logger, or the development one on request
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func outputFormat(cmd *cobra.Command) (output.Format, error) {
	format, _ := cmd.Flags().GetString("format")
	return output.ParseFormat(format)
}
