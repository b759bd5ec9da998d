package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"wacomsync/internal/domain"
)

// Snapshot is the hardware seen by one discovery pass. It is never mutated
// after it is published.
type Snapshot struct {
	Devices     []domain.Device
	Monitors    domain.MonitorSet
	RefreshedAt time.Time
}

// Discovery enumerates hardware. adapter.Discoverer implements it.
type Discovery interface {
	DiscoverDevices(ctx context.Context) []domain.Device
	DiscoverMonitors(ctx context.Context) domain.MonitorSet
}

// Applier applies a profile to a device list. mapping.Engine implements it.
type Applier interface {
	Apply(ctx context.Context, profile domain.Profile, devices []domain.Device, monitors domain.MonitorSet) *domain.ApplyReport
}

// HistoryRecorder stores apply reports. repository.HistoryRepository
// satisfies it.
type HistoryRecorder interface {
	RecordApply(ctx context.Context, report *domain.ApplyReport) (string, error)
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHistory records every apply report with rec
func WithHistory(rec HistoryRecorder) SessionOption {
	return func(s *Session) {
		s.history = rec
	}
}

// Session is the facade front-ends talk to
type Session struct {
	discovery Discovery
	engine    Applier
	history   HistoryRecorder
	logger    *zap.Logger
	now       func() time.Time

	snapshot atomic.Pointer[Snapshot]
}

// NewSession creates a session and runs the initial discovery
func NewSession(ctx context.Context, discovery Discovery, engine Applier, opts ...SessionOption) *Session {
	s := &Session{
		discovery: discovery,
		engine:    engine,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Refresh(ctx)
	return s
}

// Refresh re-runs discovery and replaces the snapshot
func (s *Session) Refresh(ctx context.Context) *Snapshot {
	devices := s.discovery.DiscoverDevices(ctx)
	monitors := s.discovery.DiscoverMonitors(ctx)
	if devices == nil {
		devices = []domain.Device{}
	}
	if monitors == nil {
		monitors = domain.MonitorSet{}
	}

	snap := &Snapshot{
		Devices:     devices,
		Monitors:    monitors,
		RefreshedAt: s.now(),
	}
	s.snapshot.Store(snap)

	s.logger.Info("hardware refreshed",
		zap.Int("devices", len(devices)),
		zap.Strings("monitors", monitors.Names()))
	return snap
}

// Snapshot returns the current snapshot
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Devices returns the devices of the current snapshot
func (s *Session) Devices() []domain.Device {
	return s.Snapshot().Devices
}

// Monitors returns the monitors of the current snapshot
func (s *Session) Monitors() domain.MonitorSet {
	return s.Snapshot().Monitors
}

// Apply applies an ad-hoc profile to the devices of the current snapshot.
// The error is non-nil only when the profile itself is invalid; device
// failures are reported per device in the report.
func (s *Session) Apply(ctx context.Context, profile domain.Profile) (*domain.ApplyReport, error) {
	return s.apply(ctx, "", profile)
}

func (s *Session) apply(ctx context.Context, name string, profile domain.Profile) (*domain.ApplyReport, error) {
	profile = profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	snap := s.Snapshot()
	report := s.engine.Apply(ctx, profile, snap.Devices, snap.Monitors)
	report.ProfileName = name

	s.logger.Info("profile applied",
		zap.String("profile", name),
		zap.String("summary", report.Summary()),
		zap.Int("devices", len(report.Results)),
		zap.Int("failed", report.Failed()))

	if s.history != nil {
		id, err := s.history.RecordApply(ctx, report)
		if err != nil {
			s.logger.Warn("failed to record apply history", zap.Error(err))
		} else {
			s.logger.Debug("apply recorded", zap.String("id", id))
		}
	}
	return report, nil
}
