package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CreativeUnicorns/switcherprefs"
	"github.com/CreativeUnicorns/switcherprefs/storage"
)

type harness struct {
	t   *testing.T
	dsn string
}

// newHarness isolates the config lookup and points every command at a
// settings file in a temporary directory.
func newHarness(t *testing.T) *harness {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return &harness{t: t, dsn: filepath.Join(t.TempDir(), "settings.yaml")}
}

func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--backend", "file", "--dsn", h.dsn}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, errOut, err := h.run(args...)
	require.NoError(h.t, err, errOut)
	return out
}

func (h *harness) seed(entries map[string]string) {
	h.t.Helper()
	fs, err := storage.NewFileStorage(h.dsn, switcherprefs.DefaultDomain, nil)
	require.NoError(h.t, err)
	defer fs.Close()
	for k, v := range entries {
		require.NoError(h.t, fs.Set(context.Background(), k, v))
	}
}

func TestGetSet(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "0\n", h.mustRun("get", "appearanceStyle"))

	h.mustRun("set", "appearanceStyle", "1")
	assert.Equal(t, "1\n", h.mustRun("get", "appearanceStyle"))

	_, _, err := h.run("set", "appearanceStyle", "sideways")
	assert.ErrorIs(t, err, switcherprefs.ErrInvalidValue)

	_, errOut, err := h.run("get", "nope")
	assert.ErrorIs(t, err, switcherprefs.ErrPreferenceNotDefined)
	assert.Contains(t, errOut, "nope")

	h.mustRun("unset", "appearanceStyle")
	assert.Equal(t, "0\n", h.mustRun("get", "appearanceStyle"))
}

func TestList(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "iconSize", "40")

	var persisted map[string]string
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("list", "--persisted", "-o", "json")), &persisted))
	assert.Equal(t, map[string]string{
		"iconSize":                          "40",
		switcherprefs.PreferencesVersionKey: switcherprefs.DefaultAppVersion,
	}, persisted)

	var all map[string]string
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("list", "-o", "json")), &all))
	assert.Len(t, all, len(switcherprefs.Definitions()))
	assert.Equal(t, "40", all["iconSize"])
	assert.Equal(t, "15", all["fontHeight"])
}

func TestDefinitions(t *testing.T) {
	h := newHarness(t)

	var defs []switcherprefs.Definition
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("definitions", "--category", switcherprefs.CategoryGeneral, "-o", "json")), &defs))
	require.NotEmpty(t, defs)
	for _, d := range defs {
		assert.Equal(t, switcherprefs.CategoryGeneral, d.Category)
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "iconSize", "40")

	_, _, err := h.run("reset")
	assert.Error(t, err)
	assert.Equal(t, "40\n", h.mustRun("get", "iconSize"))

	h.mustRun("reset", "--force")
	assert.Equal(t, "32\n", h.mustRun("get", "iconSize"))
}

func TestMigrate(t *testing.T) {
	h := newHarness(t)
	h.seed(map[string]string{
		switcherprefs.PreferencesVersionKey: "6.28.0",
		"windowMinWidthInRow":               "0",
	})

	var report map[string]string
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("migrate", "--app-version", "7.1.0", "-o", "json")), &report))
	assert.Equal(t, map[string]string{"from": "6.28.0", "to": "7.1.0"}, report)

	assert.Equal(t, "1\n", h.mustRun("get", "windowMinWidthInRow", "--app-version", "7.1.0"))
	assert.Equal(t, "7.1.0\n", h.mustRun("get", switcherprefs.PreferencesVersionKey, "--app-version", "7.1.0"))
}

func TestExportImport(t *testing.T) {
	src := newHarness(t)
	src.mustRun("set", "appearanceTheme", "1")
	src.mustRun("set", "holdShortcut3", "⌃")
	src.mustRun("set", "windowDisplayDelay", "250")
	exported := src.mustRun("export")
	assert.Contains(t, exported, "appearanceTheme: dark")

	file := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte(exported), 0o644))

	dst := &harness{t: t, dsn: filepath.Join(t.TempDir(), "other.yaml")}
	var report map[string][]string
	require.NoError(t, json.Unmarshal([]byte(dst.mustRun("import", file, "-o", "json")), &report))
	assert.ElementsMatch(t, []string{"appearanceTheme", "holdShortcut3", "windowDisplayDelay"}, report["written"])

	assert.Equal(t, "1\n", dst.mustRun("get", "appearanceTheme"))
	assert.Equal(t, "⌃\n", dst.mustRun("get", "holdShortcut3"))
	assert.Equal(t, "250\n", dst.mustRun("get", "windowDisplayDelay"))
}

func TestImport_PartialDocument(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "iconSize", "40")

	file := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"appearanceStyle": "titles"}`), 0o644))
	h.mustRun("import", file)

	assert.Equal(t, "2\n", h.mustRun("get", "appearanceStyle"))
	assert.Equal(t, "40\n", h.mustRun("get", "iconSize"), "omitted fields keep their value")

	require.NoError(t, os.WriteFile(file, []byte(`appearanceStyle: [`), 0o644))
	_, _, err := h.run("import", file)
	assert.Error(t, err)
}

func TestAppearance(t *testing.T) {
	h := newHarness(t)

	var size map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("appearance", "size", "-o", "json")), &size))
	assert.Equal(t, 4.0, size["rowsCount"])

	h.mustRun("set", "appearanceVisibility", "2")
	var theme map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("appearance", "theme", "-o", "json")), &theme))
	assert.Equal(t, 4.0, theme["highlightBorderWidth"])

	h.mustRun("appearance", "reset-size")
	assert.Equal(t, "30\n", h.mustRun("get", "iconSize"))
}

func TestBlacklist(t *testing.T) {
	h := newHarness(t)

	list := func() []switcherprefs.BlacklistEntry {
		var entries []switcherprefs.BlacklistEntry
		require.NoError(t, json.Unmarshal([]byte(h.mustRun("blacklist", "-o", "json")), &entries))
		return entries
	}
	assert.Equal(t, switcherprefs.DefaultBlacklist(), list())

	h.mustRun("blacklist", "add", "com.example.a", "--hide", "always")
	h.mustRun("blacklist", "add", "com.apple.finder", "--ignore", "whenFullscreen")
	entries := list()
	assert.Contains(t, entries, switcherprefs.BlacklistEntry{BundleIdentifier: "com.example.a", Hide: switcherprefs.HideAlways})
	assert.Contains(t, entries, switcherprefs.BlacklistEntry{BundleIdentifier: "com.apple.finder", Ignore: switcherprefs.IgnoreWhenFullscreen})
	assert.Len(t, entries, len(switcherprefs.DefaultBlacklist())+1)

	h.mustRun("blacklist", "remove", "com.example.a")
	for _, e := range list() {
		assert.NotEqual(t, "com.example.a", e.BundleIdentifier)
	}

	_, _, err := h.run("blacklist", "add", "com.example.b", "--hide", "sometimes")
	assert.ErrorIs(t, err, switcherprefs.ErrInvalidValue)
}

func TestOutputFormat(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("appearance", "size", "-o", "xml")
	assert.Error(t, err)

	out := h.mustRun("appearance", "size")
	assert.True(t, strings.HasPrefix(out, "windowPadding:"), out)
}
