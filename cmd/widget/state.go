package main

import (
	"vocabwidget/internal/domain"
	"vocabwidget/internal/output"
	"vocabwidget/internal/repository/filestore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the persisted window state",
	Long:  "Load the window state file, merged over the defaults, and print it.",
	RunE:  runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
}

// stateResult is the output of the state command
type stateResult struct {
	Path  string             `yaml:"path" json:"path"`
	State domain.WindowState `yaml:"state" json:"state"`
}

func runState(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	stateFile := filestore.NewStateFile(cfg.StateFile)
	state, err := stateFile.Load()
	if err != nil {
		logger.Warn("Failed to load window state, showing defaults", zap.Error(err))
	}

	return output.Print(cmd.OutOrStdout(), format, stateResult{Path: stateFile.Path(), State: state})
}
