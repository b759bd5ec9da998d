package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wacomsync/internal/adapter"
	"wacomsync/internal/config"
	"wacomsync/internal/domain"
	"wacomsync/internal/mapping"
	"wacomsync/internal/profile"
	"wacomsync/internal/repository"
	"wacomsync/internal/repository/sqlite"
	"wacomsync/internal/service"
)

// newRunner builds the command runner; tests replace it with a scripted one
var newRunner = func(cfg *config.Config, logger *zap.Logger) adapter.Runner {
	return adapter.NewExecRunner(
		adapter.WithTimeout(cfg.CommandTimeout()),
		adapter.WithLogger(logger.Named("exec")),
	)
}

// app holds the services one command needs
type app struct {
	session  *service.Session
	profiles *service.ProfileService
	history  repository.HistoryRepository
}

// newApp wires discovery, the engine, the store and, when enabled, history.
// Hardware discovery only runs when withSession is set.
func newApp(ctx context.Context, withSession bool) *app {
	a := &app{}
	store := profile.NewStore(cfg.ProfilesPath)

	if withSession {
		runner := newRunner(cfg, logger)
		tablet := adapter.NewTablet(runner, cfg.Commands.Xsetwacom)
		display := adapter.NewDisplay(runner, cfg.Commands.Xrandr)
		discovery := adapter.NewDiscoverer(tablet, display, logger.Named("discovery"))
		engine := mapping.NewEngine(tablet, logger.Named("mapping"))

		opts := []service.SessionOption{service.WithLogger(logger.Named("session"))}
		if cfg.History.Enabled {
			repo, err := sqlite.New(cfg.History.Path)
			if err != nil {
				// History is best effort; mapping still works without it.
				logger.Warn("apply history unavailable", zap.String("path", cfg.History.Path), zap.Error(err))
			} else {
				a.history = repo
				opts = append(opts, service.WithHistory(repo))
			}
		}
		a.session = service.NewSession(ctx, discovery, engine, opts...)
	}

	a.profiles = service.NewProfileService(store, a.session)
	return a
}

// Close releases the history database
func (a *app) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			logger.Warn("failed to close history", zap.Error(err))
		}
	}
}

// profileFlags are the flags that describe an ad-hoc profile
type profileFlags struct {
	target    string
	mode      string
	keepRatio bool
}

func (f *profileFlags) profile() (domain.Profile, error) {
	mode, err := domain.ParseMode(f.mode)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Target:    f.target,
		Mode:      mode,
		KeepRatio: f.keepRatio,
	}.Normalize(), nil
}

// failedError is returned when at least one device could not be configured
func failedError(report *domain.ApplyReport) error {
	if report.Failed() == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d devices failed", report.Failed(), len(report.Results))
}
