package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vocabwidget/internal/gui"
	"vocabwidget/internal/handler"
	"vocabwidget/internal/repository/filestore"
	"vocabwidget/internal/rotation"
	"vocabwidget/internal/service"
	"vocabwidget/internal/watcher"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const AppID = "com.example.vocabwidget"

func runWidget(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}
	defer logger.Sync()

	logger.Info("Starting vocabulary widget",
		zap.String("vocab_override", cfg.VocabPath),
		zap.String("state_file", cfg.StateFile),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	clock := clockwork.NewRealClock()

	// Initialize storage
	resolver := filestore.NewPathResolver(cfg.VocabPath, cfg.DefaultVocabPath, logger)
	source := filestore.NewPrefsSource(resolver)
	stateFile := filestore.NewStateFile(cfg.StateFile)

	// Initialize services
	vocabularyService := service.NewVocabularyService(source, clock, logger)
	windowService := service.NewWindowService(stateFile, service.StaticDisplays(cfg.WorkAreas), logger)
	prepared := windowService.Prepare()

	// Initialize window
	fyneApp := app.NewWithID(AppID)
	window := gui.NewWindow(fyneApp)
	window.Resize(fyne.NewSize(float32(prepared.Width), float32(prepared.Height)))
	host := gui.NewHost(fyneApp, window, logger)

	var controller *handler.Controller
	view := gui.NewView(gui.Actions{
		OnPin:      func() { controller.TogglePin() },
		OnMinimize: func() { controller.ToggleMinimize() },
		OnClose:    func() { controller.Close() },
		OnPrevious: func() { controller.Previous() },
		OnNext:     func() { controller.Next() },
		OnPause:    func() { controller.TogglePause() },
		OnReload:   func() { controller.Reload(ctx) },
	})
	engine := rotation.NewEngine(clock, view, logger)
	controller = handler.NewController(vocabularyService, windowService, engine, view, logger)

	host.SetContent(view.GetContainer())
	host.InstallCloseIntercept(controller.Close)

	// Watch the vocabulary file for regenerations
	fileWatcher := watcher.New(logger)
	defer fileWatcher.Close()
	if path, err := source.Path(); err != nil {
		logger.Info("Vocabulary file not found, not watching", zap.String("candidate", resolver.Candidate()))
	} else if err := fileWatcher.Watch(ctx, path, func() { controller.VocabularyUpdated(ctx) }); err != nil {
		logger.Warn("Failed to start file watcher", zap.Error(err))
	}

	fyneApp.Lifecycle().SetOnStarted(func() {
		go func() {
			windowService.Attach(host)
			host.OnBoundsChanged(windowService.BoundsChanged)
			controller.Start(ctx)
		}()
	})

	// Quit on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logger.Info("Shutdown signal received, closing widget...")
			controller.Close()
		case <-ctx.Done():
		}
	}()

	window.Show()
	fyneApp.Run()

	engine.Stop()
	logger.Info("Widget stopped")
	return nil
}
