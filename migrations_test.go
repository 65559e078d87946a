package switcherprefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRaw(t *testing.T, backend *MockBackend, key, want string) {
	t.Helper()
	v, ok := backend.Raw(key)
	if assert.True(t, ok, "expected %q to be persisted", key) {
		assert.Equal(t, want, v, "value of %q", key)
	}
}

func assertAbsent(t *testing.T, backend *MockBackend, key string) {
	t.Helper()
	_, ok := backend.Raw(key)
	assert.False(t, ok, "expected %q to be absent", key)
}

func TestMigrate_FreshInstall(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackend()
	loginItems := &mockLoginItems{}
	s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"), WithLoginItems(loginItems))

	require.NoError(t, s.Migrate(ctx))

	assertRaw(t, backend, PreferencesVersionKey, "7.0.0")
	assert.Equal(t, 1, backend.Mutations(), "a fresh install is only stamped")
	assert.Zero(t, loginItems.calls)
}

func TestMigrate_SameVersion(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey: "7.0.0",
		"spacesToShow":        "1",
	})
	s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"))

	require.NoError(t, s.Migrate(ctx))
	assert.Zero(t, backend.Mutations())
	assertRaw(t, backend, "spacesToShow", "1")
}

func TestMigrate_Downgrade(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey: "8.0.0",
		"titleTruncation":     "0",
	})
	s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"))

	require.NoError(t, s.Migrate(ctx))
	assertRaw(t, backend, "titleTruncation", "0")
	assertRaw(t, backend, PreferencesVersionKey, "7.0.0")
}

func TestMigrate_FromOldestVersion(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey: "6.18.0",

		"holdShortcut":        "⌥",
		"nextWindowShortcut":  "⌥⇥",
		"holdShortcut2":       "⌃⌥",
		"nextWindowShortcut2": "⌃`",

		"theme":           "\uf8ff macOS",
		"showOnScreen":    "Main screen",
		"alignThumbnails": "Left",
		"appsToShow":      "Active app",
		"spacesToShow":    "Active space",
		"screensToShow":   "All screens",

		"hideMenubarIcon": "true",

		"showMinimizedWindows":   "true",
		"showHiddenWindows2":     "false",
		"showFullscreenWindows2": "true",

		"maxScreenUsage": "70",

		"spacesToShow2": "2",

		"windowMinWidthInRow": "0",
		"windowMaxWidthInRow": "40",

		"dontShowBlacklist":                       "com.example.a\n com.example.b \n",
		"disableShortcutsBlacklist":               "com.example.c",
		"disableShortcutsBlacklistOnlyFullscreen": "true",

		"titleTruncation":  "0",
		"titleTruncation3": "2",
	})
	loginItems := &mockLoginItems{}
	s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"), WithLoginItems(loginItems))

	require.NoError(t, s.Migrate(ctx))

	t.Run("next window shortcuts", func(t *testing.T) {
		assertRaw(t, backend, "nextWindowShortcut", "⇥")
		assertRaw(t, backend, "nextWindowShortcut2", "`")
	})

	t.Run("dropdowns from text to indexes", func(t *testing.T) {
		assertRaw(t, backend, "theme", "0")
		assertRaw(t, backend, "showOnScreen", "0")
		assertRaw(t, backend, "alignThumbnails", "0")
		assertRaw(t, backend, "appsToShow", "1")
	})

	t.Run("menubar icon", func(t *testing.T) {
		assertRaw(t, backend, "menubarIcon", "3")
		assert.Equal(t, MenubarIconHidden, Get(ctx, s, KeyMenubarIcon))
	})

	t.Run("show windows checkboxes", func(t *testing.T) {
		assertRaw(t, backend, "showMinimizedWindows", "0")
		assertRaw(t, backend, "showHiddenWindows2", "1")
		assertRaw(t, backend, "showFullscreenWindows2", "0")
	})

	t.Run("max size on screen", func(t *testing.T) {
		assertRaw(t, backend, "maxWidthOnScreen", "70")
		assertRaw(t, backend, "maxHeightOnScreen", "70")
	})

	t.Run("show windows from", func(t *testing.T) {
		// "Active space" became index 1 at 6.18.1, a screen filter at 6.23.0
		// and "visible" (2) at 6.72.0.
		assertRaw(t, backend, "spacesToShow", "2")
		assertRaw(t, backend, "screensToShow", "1")
		assertRaw(t, backend, "spacesToShow2", "2")
		assertRaw(t, backend, "screensToShow2", "1")
	})

	t.Run("login item", func(t *testing.T) {
		assert.Equal(t, 1, loginItems.calls)
	})

	t.Run("min max width in row", func(t *testing.T) {
		assertRaw(t, backend, "windowMinWidthInRow", "1")
		assertRaw(t, backend, "windowMaxWidthInRow", "40")
	})

	t.Run("blacklists", func(t *testing.T) {
		assert.Equal(t, []BlacklistEntry{
			{BundleIdentifier: "com.example.a", Hide: HideAlways, Ignore: IgnoreNone},
			{BundleIdentifier: "com.example.b", Hide: HideAlways, Ignore: IgnoreNone},
			{BundleIdentifier: "com.example.c", Hide: HideNone, Ignore: IgnoreWhenFullscreen},
		}, s.Blacklist(ctx))
		assertAbsent(t, backend, "dontShowBlacklist")
		assertAbsent(t, backend, "disableShortcutsBlacklist")
		assertAbsent(t, backend, "disableShortcutsBlacklistOnlyFullscreen")
	})

	t.Run("preference indexes", func(t *testing.T) {
		assertRaw(t, backend, "titleTruncation", "2")
		assertRaw(t, backend, "titleTruncation3", "0")
		assert.Equal(t, TitleTruncationEnd, Get(ctx, s, KeyTitleTruncation))
	})

	t.Run("version stamp", func(t *testing.T) {
		assertRaw(t, backend, PreferencesVersionKey, "7.0.0")
	})
}

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey: "6.20.0",
		"spacesToShow":        "2",
		"titleTruncation":     "0",
		"windowMinWidthInRow": "0",
		"dontShowBlacklist":   "com.example.a",
	})
	s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"))

	require.NoError(t, s.Migrate(ctx))
	first := backend.Mutations()
	assert.NotZero(t, first)

	all, err := backend.GetAll(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Migrate(ctx))
	assert.Equal(t, first, backend.Mutations(), "second run must not write")

	after, err := backend.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, after)
}

func TestMigrate_FailedStampRunsNoStep(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey: "6.70.0",
		"titleTruncation":     "0",
		"spacesToShow":        "1",
	})
	backend.SetSetError(PreferencesVersionKey, ErrStorageUnavailable)
	s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"))

	err := s.Migrate(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Zero(t, backend.Mutations())
	assertRaw(t, backend, "titleTruncation", "0")
	assertRaw(t, backend, PreferencesVersionKey, "6.70.0")

	backend.SetSetError(PreferencesVersionKey, nil)
	require.NoError(t, s.Migrate(ctx))
	assertRaw(t, backend, "titleTruncation", "2")
	assertRaw(t, backend, "spacesToShow", "2")
	assertRaw(t, backend, PreferencesVersionKey, "7.0.0")

	require.NoError(t, s.Migrate(ctx))
	assertRaw(t, backend, "titleTruncation", "2")
}

func TestMigrate_ThresholdsAreInclusive(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey:       "6.42.0",
		"windowMinWidthInRow":       "0",
		"disableShortcutsBlacklist": "com.example.c",
		"spacesToShow":              "1",
	})
	s, _, _ := newTestStore(backend, WithAppVersion("6.72.0"))

	require.NoError(t, s.Migrate(ctx))

	assertRaw(t, backend, "windowMinWidthInRow", "0")
	assert.Equal(t, []BlacklistEntry{
		{BundleIdentifier: "com.example.c", Hide: HideNone, Ignore: IgnoreAlways},
	}, s.Blacklist(ctx))
	assertRaw(t, backend, "spacesToShow", "2")
	assertRaw(t, backend, PreferencesVersionKey, "6.72.0")
}

func TestMigrate_UnparsableVersion(t *testing.T) {
	ctx := context.Background()
	backend := NewMockBackendFrom(map[string]string{
		PreferencesVersionKey: "not-a-version",
		"hideMenubarIcon":     "true",
	})
	s, _, logger := newTestStore(backend, WithAppVersion("7.0.0"))

	require.NoError(t, s.Migrate(ctx))

	assertRaw(t, backend, "menubarIcon", "3")
	assertRaw(t, backend, PreferencesVersionKey, "7.0.0")
	assert.GreaterOrEqual(t, logger.Count("WARN"), 1)
}

func TestMigrate_InvalidAppVersion(t *testing.T) {
	backend := NewMockBackend()
	s, _, _ := newTestStore(backend, WithAppVersion("seven"))

	err := s.Migrate(context.Background())
	assert.ErrorIs(t, err, ErrInvalidVersion)
	assert.Zero(t, backend.Mutations())
}

func TestMigrate_StorageFailure(t *testing.T) {
	backend := NewMockBackend()
	backend.SetGetError(ErrStorageUnavailable)
	s, _, _ := newTestStore(backend)

	err := s.Migrate(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestMigrateLoginItem(t *testing.T) {
	ctx := context.Background()

	t.Run("panic is swallowed", func(t *testing.T) {
		backend := NewMockBackendFrom(map[string]string{PreferencesVersionKey: "6.27.0"})
		loginItems := &mockLoginItems{panic: true}
		s, _, logger := newTestStore(backend, WithAppVersion("7.0.0"), WithLoginItems(loginItems))

		assert.NotPanics(t, func() {
			require.NoError(t, s.Migrate(ctx))
		})
		assert.Equal(t, 1, loginItems.calls)
		assert.Equal(t, 1, logger.Count("WARN"))
		assertRaw(t, backend, PreferencesVersionKey, "7.0.0")
	})

	t.Run("error is swallowed", func(t *testing.T) {
		backend := NewMockBackendFrom(map[string]string{PreferencesVersionKey: "6.27.0"})
		loginItems := &mockLoginItems{err: errors.New("not permitted")}
		s, _, logger := newTestStore(backend, WithAppVersion("7.0.0"), WithLoginItems(loginItems))

		require.NoError(t, s.Migrate(ctx))
		assert.Equal(t, 1, loginItems.calls)
		assert.Equal(t, 1, logger.Count("WARN"))
	})

	t.Run("skipped after 6.27.1", func(t *testing.T) {
		backend := NewMockBackendFrom(map[string]string{PreferencesVersionKey: "6.28.0"})
		loginItems := &mockLoginItems{}
		s, _, _ := newTestStore(backend, WithAppVersion("7.0.0"), WithLoginItems(loginItems))

		require.NoError(t, s.Migrate(ctx))
		assert.Zero(t, loginItems.calls)
	})
}
