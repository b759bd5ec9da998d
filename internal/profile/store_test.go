package profile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wacomsync/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "profiles.json"))
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)

	profiles, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestLoad_EmptyFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("  \n"), 0644))

	profiles, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestSaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	want := domain.Profile{Target: "HDMI-1", Mode: domain.ModeRelative, KeepRatio: true}

	require.NoError(t, store.Save("art", want))

	profiles, err := store.Load()
	require.NoError(t, err)
	require.Contains(t, profiles, "art")
	assert.Equal(t, want, profiles["art"])

	got, err := store.Get("art")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_OverwritesAndKeepsOthers(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("work", domain.Profile{Target: "DP-1", Mode: domain.ModeAbsolute}))
	require.NoError(t, store.Save("art", domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute, KeepRatio: true}))
	require.NoError(t, store.Save("work", domain.Profile{Target: "DP-2", Mode: domain.ModeRelative}))

	profiles, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "work"}, profiles.Names())
	assert.Equal(t, "DP-2", profiles["work"].Target)
	assert.Equal(t, domain.ModeRelative, profiles["work"].Mode)
	assert.True(t, profiles["art"].KeepRatio)
}

func TestSave_DocumentFormat(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("art", domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute, KeepRatio: true}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]any{"target": "HDMI-1", "mode": "Absolute", "keep_ratio": true}, raw["art"])
	assert.True(t, strings.Contains(string(data), "\n    \"art\""), "document should be indented:\n%s", data)
}

func TestSave_NormalizesAndValidates(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("  quick  ", domain.Profile{Mode: "relative"}))
	got, err := store.Get("quick")
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Target: domain.DesktopTarget, Mode: domain.ModeRelative}, got)

	err = store.Save("bad", domain.Profile{Target: "HDMI-1", Mode: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidMode)

	err = store.Save("   ", domain.Profile{Target: "HDMI-1"})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "profiles.json"))

	require.NoError(t, store.Save("p", domain.Profile{Target: "DP-1", Mode: domain.ModeAbsolute}))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestLoad_ReadsLegacyDocument(t *testing.T) {
	store := newTestStore(t)
	legacy := `{
    "Drawing": {
        "target": "HDMI-1",
        "mode": "Absolute",
        "keep_ratio": true
    },
    "Sparse": {}
}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(legacy), 0644))

	profiles, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute, KeepRatio: true}, profiles["Drawing"])
	assert.Equal(t, domain.Profile{Target: domain.DesktopTarget, Mode: domain.ModeAbsolute}, profiles["Sparse"])
}

func TestLoad_CorruptDocumentIsError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0644))

	_, err := store.Load()
	require.Error(t, err)

	err = store.Save("p", domain.Profile{Target: "DP-1", Mode: domain.ModeAbsolute})
	require.Error(t, err, "save must not silently replace an unreadable document")

	data, readErr := os.ReadFile(store.Path())
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(data))
}

func TestLoad_UnreadableIsError(t *testing.T) {
	// A directory at the document path cannot be read as a file.
	store := NewStore(t.TempDir())

	_, err := store.Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSave_WritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "dotfiles", "wacom.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(doc), 0755))
	require.NoError(t, os.WriteFile(doc, []byte("{}"), 0644))
	link := filepath.Join(dir, ".wacom_profiles.json")
	require.NoError(t, os.Symlink(doc, link))

	store := NewStore(link)
	require.NoError(t, store.Save("art", domain.Profile{Target: "HDMI-1", Mode: domain.ModeAbsolute}))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must survive the save")

	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"art"`)

	p, err := store.Get("art")
	require.NoError(t, err)
	assert.Equal(t, "HDMI-1", p.Target)
}

func TestSave_DanglingRelativeSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "profiles.json")
	require.NoError(t, os.Symlink("linked.json", link))

	store := NewStore(link)
	require.NoError(t, store.Save("art", domain.Profile{}))

	_, err := os.Stat(filepath.Join(dir, "linked.json"))
	require.NoError(t, err)
	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestGet_TrimsName(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(" work ", domain.Profile{Target: "DP-1"}))

	for _, name := range []string{"work", " work", "work\t"} {
		p, err := store.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, "DP-1", p.Target)
	}
}
