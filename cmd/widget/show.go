package main

import (
	"errors"

	"vocabwidget/internal/output"
	"vocabwidget/internal/repository/filestore"
	"vocabwidget/internal/service"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the vocabulary the widget would display",
	Long:  "Resolve the vocabulary file, select today's list (or the most recent earlier one) and print it.",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// showResult is the output of the show command
type showResult struct {
	Path   string                   `yaml:"path,omitempty" json:"path,omitempty"`
	Result service.VocabularyResult `yaml:"result" json:"result"`
}

func runShow(cmd *cobra.Command, args []string) error {
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

	source := filestore.NewPrefsSource(filestore.NewPathResolver(cfg.VocabPath, cfg.DefaultVocabPath, logger))
	vocabularyService := service.NewVocabularyService(source, clockwork.NewRealClock(), logger)

	result := vocabularyService.GetVocabulary(cmd.Context())
	path, _ := source.Path()

	if err := output.Print(cmd.OutOrStdout(), format, showResult{Path: path, Result: result}); err != nil {
		return err
	}
	if !result.Success {
		return errors.New(result.Error)
	}
	return nil
}
