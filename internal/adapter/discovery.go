package adapter

import (
	"context"

	"go.uber.org/zap"

	"wacomsync/internal/domain"
)

// Discoverer enumerates devices and monitors. Tool failures never reach the
// caller: they are logged and degrade to an empty result, which front-ends
// render as "no devices found".
type Discoverer struct {
	devices  DeviceSource
	monitors MonitorSource
	logger   *zap.Logger
}

// NewDiscoverer creates a Discoverer over the given sources
func NewDiscoverer(devices DeviceSource, monitors MonitorSource, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{
		devices:  devices,
		monitors: monitors,
		logger:   logger,
	}
}

// DiscoverDevices returns the stylus and eraser devices, or an empty slice
func (d *Discoverer) DiscoverDevices(ctx context.Context) []domain.Device {
	devices, err := d.devices.ListDevices(ctx)
	if err != nil {
		d.logger.Warn("device discovery failed", zap.Error(err))
		return []domain.Device{}
	}
	d.logger.Debug("discovered devices", zap.Int("count", len(devices)))
	return devices
}

// DiscoverMonitors returns the monitors keyed by name, or an empty set
func (d *Discoverer) DiscoverMonitors(ctx context.Context) domain.MonitorSet {
	monitors, err := d.monitors.ListMonitors(ctx)
	if err != nil {
		d.logger.Warn("monitor discovery failed", zap.Error(err))
		return domain.MonitorSet{}
	}
	d.logger.Debug("discovered monitors", zap.Strings("names", monitors.Names()))
	return monitors
}
