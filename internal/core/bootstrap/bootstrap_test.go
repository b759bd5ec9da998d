package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetectSessionType(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want SessionType
	}{
		{"explicit x11", map[string]string{"XDG_SESSION_TYPE": "x11", "DISPLAY": ":0"}, SessionX11},
		{"explicit wayland", map[string]string{"XDG_SESSION_TYPE": "Wayland"}, SessionWayland},
		{"wayland display only", map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}, SessionWayland},
		{"display only", map[string]string{"DISPLAY": ":1"}, SessionX11},
		{"nothing", map[string]string{}, SessionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSessionType(env(tt.vars)))
		})
	}
}

func TestDetectDisplay(t *testing.T) {
	checks := DetectDisplay(env(map[string]string{}))
	require.Len(t, checks, 2)
	assert.Equal(t, StatusFail, checks[0].Status)

	checks = DetectDisplay(env(map[string]string{"DISPLAY": ":0", "WAYLAND_DISPLAY": "wayland-0"}))
	assert.Equal(t, StatusOK, checks[0].Status)
	assert.Equal(t, StatusWarn, checks[1].Status)
}

func TestDetectTools(t *testing.T) {
	lookPath := func(name string) (string, error) {
		if name == "xrandr" {
			return "/usr/bin/xrandr", nil
		}
		return "", errors.New("not found")
	}

	checks := DetectTools([]string{"xsetwacom", "xrandr"}, lookPath)
	require.Len(t, checks, 2)
	assert.Equal(t, StatusFail, checks[0].Status)
	assert.Equal(t, StatusOK, checks[1].Status)
	assert.Equal(t, "/usr/bin/xrandr", checks[1].Detail)
}

func TestDetectPermissions(t *testing.T) {
	dir := t.TempDir()

	checks := DetectPermissions(dir, filepath.Join(dir, "profiles.json"), filepath.Join(dir, "deep", "state", "history.db"))
	require.Len(t, checks, 3)
	for _, c := range checks {
		assert.Equal(t, StatusOK, c.Status, c.Name)
	}

	missing := DetectPermissions(filepath.Join(dir, "absent"), "", "")
	require.Len(t, missing, 1)
	assert.Equal(t, StatusWarn, missing[0].Status)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	blocked := DetectPermissions("", filepath.Join(file, "profiles.json"), "")
	require.Len(t, blocked, 1)
	assert.Equal(t, StatusFail, blocked[0].Status)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	result := Run(context.Background(), Options{
		Tools:        []string{"xsetwacom", "xrandr"},
		WatchDir:     dir,
		ProfilesPath: filepath.Join(dir, "p.json"),
		Getenv:       env(map[string]string{"DISPLAY": ":0"}),
		LookPath:     func(name string) (string, error) { return "/usr/bin/" + name, nil },
	})

	assert.True(t, result.OK())
	assert.Empty(t, result.Warnings())
	assert.Len(t, result.Checks, 6)
	assert.False(t, result.Timestamp.IsZero())

	failing := Run(context.Background(), Options{
		Tools:    []string{"xsetwacom"},
		Getenv:   env(map[string]string{}),
		LookPath: func(string) (string, error) { return "", errors.New("missing") },
	})
	assert.False(t, failing.OK())
	assert.Len(t, failing.Failed(), 2)
}
