package domain

import (
	"fmt"
	"time"
)

// Outcome classifies how a profile was applied to one device
type Outcome string

const (
	// OutcomeRatioCorrected means the area was trimmed to the output's ratio
	OutcomeRatioCorrected Outcome = "ratio_corrected"
	// OutcomeStandard means the area was reset to the hardware default
	OutcomeStandard Outcome = "standard"
	// OutcomeAsIs means the output mapping was set and the area left alone
	OutcomeAsIs Outcome = "as_is"
	// OutcomeFailed means one of the device's commands failed
	OutcomeFailed Outcome = "failed"
)

// Label returns the short qualifier shown next to a device name
func (o Outcome) Label() string {
	switch o {
	case OutcomeRatioCorrected:
		return "ratio corrected"
	case OutcomeStandard:
		return "standard"
	case OutcomeAsIs:
		return "mapped as-is"
	default:
		return string(o)
	}
}

// DeviceResult is the outcome of applying a profile to a single device
type DeviceResult struct {
	Device  Device  `json:"device"`
	Outcome Outcome `json:"outcome"`
	// Area is set when the active area was changed by ratio correction
	Area *Area `json:"area,omitempty"`
	Err  error  `json:"-"`
}

// Failed reports whether the device could not be configured
func (r DeviceResult) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// Line renders the result as a single human-readable line
func (r DeviceResult) Line() string {
	if r.Failed() {
		return fmt.Sprintf("error %s: %v", r.Device.Name, r.Err)
	}
	return fmt.Sprintf("ok    %s (%s)", r.Device.Name, r.Outcome.Label())
}

// ApplyReport collects the per-device results of one apply run
type ApplyReport struct {
	// ProfileName is empty for an ad-hoc profile
	ProfileName string         `json:"profile_name,omitempty"`
	Profile     Profile        `json:"profile"`
	AppliedAt   time.Time      `json:"applied_at"`
	Results     []DeviceResult `json:"results"`
}

// Summary renders the profile that was applied
func (r *ApplyReport) Summary() string {
	return r.Profile.String()
}

// Lines returns one outcome line per device in device order
func (r *ApplyReport) Lines() []string {
	lines := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		lines = append(lines, res.Line())
	}
	return lines
}

// Failed returns the number of devices that could not be configured
func (r *ApplyReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}

// Empty reports whether there were no devices to configure
func (r *ApplyReport) Empty() bool {
	return len(r.Results) == 0
}
