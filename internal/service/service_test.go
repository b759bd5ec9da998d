package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wacomsync/internal/adapter"
	"wacomsync/internal/adapter/adaptertest"
	"wacomsync/internal/codec"
	"wacomsync/internal/domain"
	"wacomsync/internal/mapping"
	"wacomsync/internal/profile"
)

const (
	deviceList = "Wacom Intuos S Pen stylus          \tid: 9\ttype: STYLUS    \n" +
		"Wacom Intuos S Pen eraser          \tid: 15\ttype: ERASER    \n" +
		"Wacom Intuos S Pad pad             \tid: 10\ttype: PAD       \n"
	monitorList = "Monitors: 1\n" +
		" 0: +*HDMI-1 1920/531x1080/299+0+0  HDMI-1\n"
)

type recorder struct {
	reports []*domain.ApplyReport
	err     error
}

func (r *recorder) RecordApply(_ context.Context, report *domain.ApplyReport) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.reports = append(r.reports, report)
	return "run-1", nil
}

func newTestSession(t *testing.T, runner *adaptertest.Runner, opts ...SessionOption) *Session {
	t.Helper()
	discovery := adapter.NewDiscoverer(adapter.NewTablet(runner, ""), adapter.NewDisplay(runner, ""), nil)
	engine := mapping.NewEngine(adapter.NewTablet(runner, ""), nil)
	opts = append([]SessionOption{WithLogger(zap.NewNop())}, opts...)
	return NewSession(context.Background(), discovery, engine, opts...)
}

func scriptedRunner() *adaptertest.Runner {
	return adaptertest.NewRunner().
		On("xsetwacom --list devices", deviceList).
		On("xrandr --listmonitors", monitorList).
		On("xsetwacom get Wacom Intuos S Pen stylus Area", "0 0 15200 9500").
		On("xsetwacom get Wacom Intuos S Pen eraser Area", "0 0 15200 9500")
}

func TestSession_InitialRefresh(t *testing.T) {
	s := newTestSession(t, scriptedRunner())

	devices := s.Devices()
	require.Len(t, devices, 2)
	assert.Equal(t, "Wacom Intuos S Pen stylus", devices[0].Name)
	assert.Equal(t, "Wacom Intuos S Pen eraser", devices[1].Name)
	assert.Equal(t, []string{"HDMI-1"}, s.Monitors().Names())
	assert.False(t, s.Snapshot().RefreshedAt.IsZero())
}

func TestSession_RefreshReplacesSnapshot(t *testing.T) {
	runner := scriptedRunner()
	s := newTestSession(t, runner)
	before := s.Snapshot()

	runner.Fail("xsetwacom --list devices", adapter.ErrToolUnavailable)
	after := s.Refresh(context.Background())

	assert.NotSame(t, before, after)
	assert.Same(t, after, s.Snapshot())
	assert.Empty(t, s.Devices())
	assert.Len(t, before.Devices, 2, "published snapshot must not change")
}

func TestSession_ApplyRecordsHistory(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(t, scriptedRunner(), WithHistory(rec))

	report, err := s.Apply(context.Background(), domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute, KeepRatio: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ok    Wacom Intuos S Pen stylus (ratio corrected)",
		"ok    Wacom Intuos S Pen eraser (ratio corrected)",
	}, report.Lines())
	require.Len(t, rec.reports, 1)
	assert.Same(t, report, rec.reports[0])
	assert.Empty(t, report.ProfileName)
}

func TestSession_ApplyNormalizesProfile(t *testing.T) {
	s := newTestSession(t, scriptedRunner())

	report, err := s.Apply(context.Background(), domain.Profile{})
	require.NoError(t, err)
	assert.Equal(t, domain.DesktopTarget, report.Profile.Target)
	assert.Equal(t, domain.ModeAbsolute, report.Profile.Mode)
	for _, res := range report.Results {
		assert.Equal(t, domain.OutcomeStandard, res.Outcome)
	}
}

func TestSession_ApplyRejectsInvalidMode(t *testing.T) {
	runner := scriptedRunner()
	s := newTestSession(t, runner)
	runner.Reset()

	_, err := s.Apply(context.Background(), domain.Profile{Target: "HDMI-1", Mode: "Sideways"})
	require.ErrorIs(t, err, domain.ErrInvalidMode)
	assert.Empty(t, runner.Calls(), "no command may run for an invalid profile")
}

func TestSession_HistoryFailureIsNotAnApplyFailure(t *testing.T) {
	rec := &recorder{err: errors.New("disk full")}
	s := newTestSession(t, scriptedRunner(), WithHistory(rec))

	report, err := s.Apply(context.Background(), domain.Profile{Target: "HDMI-1", Mode: domain.ModeRelative})
	require.NoError(t, err)
	assert.Zero(t, report.Failed())
}

func TestSession_ApplyWithNoDevices(t *testing.T) {
	runner := adaptertest.NewRunner().On("xrandr --listmonitors", monitorList)
	s := newTestSession(t, runner)

	report, err := s.Apply(context.Background(), domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute})
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestProfileService_ApplyNamed(t *testing.T) {
	store := profile.NewStore(filepath.Join(t.TempDir(), "profiles.json"))
	rec := &recorder{}
	s := newTestSession(t, scriptedRunner(), WithHistory(rec))
	svc := NewProfileService(store, s)

	require.NoError(t, svc.Save("  work ", domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute, KeepRatio: true}))

	report, err := svc.ApplyNamed(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, "work", report.ProfileName)
	assert.Equal(t, domain.OutcomeRatioCorrected, report.Results[0].Outcome)
	require.Len(t, rec.reports, 1)
	assert.Equal(t, "work", rec.reports[0].ProfileName)

	_, err = svc.ApplyNamed(context.Background(), "missing")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestProfileService_ApplyNamedWithoutSession(t *testing.T) {
	store := profile.NewStore(filepath.Join(t.TempDir(), "profiles.json"))
	svc := NewProfileService(store, nil)

	_, err := svc.ApplyNamed(context.Background(), "work")
	assert.Error(t, err)
}

func TestProfileService_ExportImport(t *testing.T) {
	src := NewProfileService(profile.NewStore(filepath.Join(t.TempDir(), "a.json")), nil)
	require.NoError(t, src.Save("work", domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute, KeepRatio: true}))
	require.NoError(t, src.Save("couch", domain.Profile{Target: domain.DesktopTarget, Mode: domain.ModeRelative}))

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf, codec.NewYAMLCodec()))

	dst := NewProfileService(profile.NewStore(filepath.Join(t.TempDir(), "b.json")), nil)
	saved, err := dst.Import(&buf, codec.NewYAMLCodec())
	require.NoError(t, err)
	assert.Equal(t, []string{"couch", "work"}, saved)

	want, err := src.List()
	require.NoError(t, err)
	got, err := dst.List()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_ImportRejectsBadDocument(t *testing.T) {
	svc := NewProfileService(profile.NewStore(filepath.Join(t.TempDir(), "p.json")), nil)

	_, err := svc.Import(bytes.NewBufferString("{not json"), codec.NewJSONCodec())
	assert.Error(t, err)
}

func TestSession_SnapshotTimestamp(t *testing.T) {
	s := newTestSession(t, scriptedRunner())
	s.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }

	snap := s.Refresh(context.Background())
	assert.Equal(t, 2026, snap.RefreshedAt.Year())
}
