package mapping

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"wacomsync/internal/domain"
)

// DeviceConfigurator issues per-device settings. adapter.Tablet implements it.
type DeviceConfigurator interface {
	SetMode(ctx context.Context, dev domain.Device, mode domain.Mode) error
	MapToOutput(ctx context.Context, dev domain.Device, target string) error
	ResetArea(ctx context.Context, dev domain.Device) error
	SetArea(ctx context.Context, dev domain.Device, area domain.Area) error
	GetArea(ctx context.Context, dev domain.Device) (domain.Area, error)
}

// Engine applies profiles to devices one at a time
type Engine struct {
	tablet DeviceConfigurator
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an Engine that configures devices through tablet
func NewEngine(tablet DeviceConfigurator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		tablet: tablet,
		logger: logger,
		now:    time.Now,
	}
}

// Apply configures every device for profile and returns one result per
// device, in device order. A failing device never stops the ones after it.
func (e *Engine) Apply(ctx context.Context, profile domain.Profile, devices []domain.Device, monitors domain.MonitorSet) *domain.ApplyReport {
	report := &domain.ApplyReport{
		Profile:   profile,
		AppliedAt: e.now(),
		Results:   make([]domain.DeviceResult, 0, len(devices)),
	}

	for _, dev := range devices {
		res := e.applyDevice(ctx, profile, dev, monitors)
		if res.Failed() {
			e.logger.Warn("device configuration failed",
				zap.String("device", dev.Name),
				zap.Error(res.Err))
		} else {
			e.logger.Info("device configured",
				zap.String("device", dev.Name),
				zap.String("outcome", string(res.Outcome)))
		}
		report.Results = append(report.Results, res)
	}

	return report
}

func (e *Engine) applyDevice(ctx context.Context, profile domain.Profile, dev domain.Device, monitors domain.MonitorSet) domain.DeviceResult {
	res := domain.DeviceResult{Device: dev}
	fail := func(err error) domain.DeviceResult {
		res.Outcome = domain.OutcomeFailed
		res.Err = err
		return res
	}

	if err := e.tablet.SetMode(ctx, dev, profile.Mode); err != nil {
		return fail(err)
	}
	if err := e.tablet.MapToOutput(ctx, dev, profile.Target); err != nil {
		return fail(err)
	}

	monitor, found := monitors.Lookup(profile.Target)
	switch {
	case profile.KeepRatio && !profile.MapsToDesktop() && found:
		area, err := e.correctRatio(ctx, dev, monitor)
		if err != nil {
			return fail(err)
		}
		res.Outcome = domain.OutcomeRatioCorrected
		res.Area = &area
	case !profile.KeepRatio:
		if err := e.tablet.ResetArea(ctx, dev); err != nil {
			return fail(err)
		}
		res.Outcome = domain.OutcomeStandard
	default:
		// Ratio requested but the target is the desktop or not connected.
		res.Outcome = domain.OutcomeAsIs
	}
	return res
}

// correctRatio trims the device's active area to the monitor's aspect ratio.
// The area is reset first so the query returns the native extents rather than
// the result of an earlier correction.
func (e *Engine) correctRatio(ctx context.Context, dev domain.Device, monitor domain.Monitor) (domain.Area, error) {
	if err := e.tablet.ResetArea(ctx, dev); err != nil {
		return domain.Area{}, err
	}
	current, err := e.tablet.GetArea(ctx, dev)
	if err != nil {
		return domain.Area{}, err
	}

	area, err := FitArea(current.X2, current.Y2, monitor.Width, monitor.Height)
	if err != nil {
		return domain.Area{}, fmt.Errorf("ratio correction for %s: %w", monitor.Name, err)
	}

	e.logger.Debug("fitted tablet area",
		zap.String("device", dev.Name),
		zap.String("monitor", monitor.Name),
		zap.Stringer("from", current),
		zap.Stringer("to", area))

	if err := e.tablet.SetArea(ctx, dev, area); err != nil {
		return domain.Area{}, err
	}
	return area, nil
}
