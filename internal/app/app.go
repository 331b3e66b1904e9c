package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vk/turnmaze/internal/config"
	"github.com/vk/turnmaze/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	model  *config.Model
	now    func() time.Time
}

// NewApp is the constructor for the main application. The console summary is
// written to outW; log records and the no-path notice go to logW. When appConfig names a settings
// path the maze list comes from loader; otherwise it is the single maze
// described by the work directory and path overrides.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := buildModel(ctx, appConfig, loader)
	if err != nil {
		return nil, err
	}
	logger.Debug("Maze list prepared.", "count", len(model.Mazes))

	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		model:  model,
		now:    time.Now,
	}, nil
}

// Model returns the mazes the app will solve. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

func buildModel(ctx context.Context, appConfig *Config, loader config.Loader) (*config.Model, error) {
	if appConfig.ConfigPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("no loader available for settings path %s", appConfig.ConfigPath)
		}
		model, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		return model, nil
	}

	model := config.ForWorkDir(appConfig.WorkDir)
	mz := model.Mazes[0]
	if appConfig.InputPath != "" {
		mz.Input = appConfig.InputPath
	}
	if appConfig.OutputPath != "" {
		mz.Output = appConfig.OutputPath
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}
