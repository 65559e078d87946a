// migrations.go
package switcherprefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

// migration rewrites data persisted by versions up to and including threshold.
type migration struct {
	threshold *version.Version
	name      string
	apply     func(ctx context.Context, s *Store) error
}

// migrations is ordered by ascending threshold. Not every step is
// idempotent, so Migrate runs each at most once per upgrade.
var migrations = []migration{
	{version.Must(version.NewVersion("6.18.1")), "next window shortcuts", migrateNextWindowShortcuts},
	{version.Must(version.NewVersion("6.18.1")), "dropdowns from text to indexes", migrateDropdownsFromTextToIndexes},
	{version.Must(version.NewVersion("6.18.1")), "menubar icon checkbox", migrateMenubarIconFromCheckboxToDropdown},
	{version.Must(version.NewVersion("6.18.1")), "show windows checkboxes", migrateShowWindowsCheckboxToDropdown},
	{version.Must(version.NewVersion("6.18.1")), "max size on screen", migrateMaxSizeOnScreenToWidthAndHeight},
	{version.Must(version.NewVersion("6.23.0")), "show windows from", migrateShowWindowsFrom},
	{version.Must(version.NewVersion("6.27.1")), "login item", migrateLoginItem},
	{version.Must(version.NewVersion("6.28.1")), "min max width in row", migrateMinMaxWindowsWidthInRow},
	{version.Must(version.NewVersion("6.42.0")), "blacklists", migrateBlacklists},
	{version.Must(version.NewVersion("6.72.0")), "preference indexes", migratePreferencesIndexes},
}

var zeroVersion = version.Must(version.NewVersion("0"))

// Migrate upgrades data written by an older application version. The domain
// is stamped with the running version before any step runs, so a failed
// stamp leaves the data untouched and an interrupted upgrade is never
// replayed. A domain without a stamp is a fresh install and is only stamped.
// Individual steps are best effort.
func (s *Store) Migrate(ctx context.Context) error {
	appVersion, err := version.NewVersion(s.config.appVersion)
	if err != nil {
		return fmt.Errorf("%w: app version %q: %v", ErrInvalidVersion, s.config.appVersion, err)
	}

	disk, found, err := s.persisted(ctx, PreferencesVersionKey)
	if err != nil {
		return err
	}
	if found && disk == s.config.appVersion {
		return nil
	}

	diskVersion := appVersion
	if found {
		diskVersion, err = version.NewVersion(disk)
		if err != nil {
			s.config.logger.Warn("Unparsable preferences version, running every migration",
				"version", disk, "error", err)
			diskVersion = zeroVersion
		}
	}

	if err := s.put(ctx, PreferencesVersionKey, s.config.appVersion); err != nil {
		return fmt.Errorf("stamp preferences version: %w", err)
	}
	if diskVersion.LessThan(appVersion) {
		s.runMigrations(ctx, diskVersion)
	}
	return nil
}

func (s *Store) runMigrations(ctx context.Context, from *version.Version) {
	s.config.logger.Info("Migrating preferences", "from", from.Original(), "to", s.config.appVersion)
	for _, m := range migrations {
		if !from.LessThanOrEqual(m.threshold) {
			continue
		}
		if err := m.apply(ctx, s); err != nil {
			s.config.logger.Error("Preferences migration step failed",
				"step", m.name, "threshold", m.threshold.Original(), "error", err)
			continue
		}
		s.config.logger.Debug("Applied preferences migration step", "step", m.name)
	}
}

// migrateNextWindowShortcuts strips keys already held by the hold shortcut
// from the next-window shortcut.
func migrateNextWindowShortcuts(ctx context.Context, s *Store) error {
	for _, suffix := range []string{"", "2"} {
		hold, okHold, err := s.persisted(ctx, KeyHoldShortcut.BaseName()+suffix)
		if err != nil {
			return err
		}
		nextKey := KeyNextWindowShortcut.BaseName() + suffix
		next, okNext, err := s.persisted(ctx, nextKey)
		if err != nil {
			return err
		}
		if !okHold || !okNext {
			continue
		}
		cleaned := next
		for _, r := range hold {
			cleaned = strings.ReplaceAll(cleaned, string(r), "")
		}
		if cleaned != next {
			if err := s.put(ctx, nextKey, cleaned); err != nil {
				return err
			}
		}
	}
	return nil
}

// Older versions stored the English label of dropdowns instead of their index.
var dropdownLabels = []struct {
	key    string
	labels map[string]string
}{
	{"theme", map[string]string{"\uf8ff macOS": "0", "❖ Windows 10": "1"}},
	// "Main screen" was renamed to "Active screen"
	{"showOnScreen", map[string]string{"Main screen": "0", "Active screen": "0", "Screen including mouse": "1"}},
	{"alignThumbnails", map[string]string{"Left": "0", "Center": "1"}},
	{"appsToShow", map[string]string{"All apps": "0", "Active app": "1"}},
	{"spacesToShow", map[string]string{"All spaces": "0", "Active space": "1"}},
	{"screensToShow", map[string]string{"All screens": "0", "Screen showing AltTab": "1"}},
}

func migrateDropdownsFromTextToIndexes(ctx context.Context, s *Store) error {
	for _, d := range dropdownLabels {
		if err := s.replaceValue(ctx, d.key, d.labels); err != nil {
			return err
		}
	}
	return nil
}

// migrateMenubarIconFromCheckboxToDropdown maps the old hideMenubarIcon checkbox.
func migrateMenubarIconFromCheckboxToDropdown(ctx context.Context, s *Store) error {
	old, ok, err := s.persisted(ctx, "hideMenubarIcon")
	if err != nil || !ok {
		return err
	}
	if old == "true" {
		return Set(ctx, s, KeyMenubarIcon, MenubarIconHidden)
	}
	return nil
}

func migrateShowWindowsCheckboxToDropdown(ctx context.Context, s *Store) error {
	checkboxes := map[string]string{
		"true":  code(ShowHowShow),
		"false": code(ShowHowHide),
	}
	for _, p := range []ProfileKey[ShowHow]{KeyShowMinimizedWindows, KeyShowHiddenWindows, KeyShowFullscreenWindows} {
		for _, suffix := range []string{"", "2"} {
			if err := s.replaceValue(ctx, p.BaseName()+suffix, checkboxes); err != nil {
				return err
			}
		}
	}
	return nil
}

// migrateMaxSizeOnScreenToWidthAndHeight splits maxScreenUsage in two.
func migrateMaxSizeOnScreenToWidthAndHeight(ctx context.Context, s *Store) error {
	old, ok, err := s.persisted(ctx, "maxScreenUsage")
	if err != nil || !ok {
		return err
	}
	if err := s.put(ctx, KeyMaxWidthOnScreen.name, old); err != nil {
		return err
	}
	return s.put(ctx, KeyMaxHeightOnScreen.name, old)
}

// migrateShowWindowsFrom splits the removed "active space" choice into a
// spaces choice and a screens choice.
func migrateShowWindowsFrom(ctx context.Context, s *Store) error {
	for _, suffix := range []string{"", "2"} {
		spacesKey := KeySpacesToShow.BaseName() + suffix
		screensKey := KeyScreensToShow.BaseName() + suffix
		spaces, ok, err := s.persisted(ctx, spacesKey)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		switch spaces {
		case "2":
			if err := s.put(ctx, screensKey, "1"); err != nil {
				return err
			}
			if err := s.put(ctx, spacesKey, "1"); err != nil {
				return err
			}
		case "1":
			if err := s.put(ctx, screensKey, "1"); err != nil {
				return err
			}
		}
	}
	return nil
}

// migrateLoginItem removes the app from the legacy login items list. The list
// API is unreliable, so failures and panics are swallowed.
func migrateLoginItem(ctx context.Context, s *Store) (err error) {
	if s.config.loginItems == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			s.config.logger.Warn("Recovered from login item removal", "panic", fmt.Sprint(r))
			err = nil
		}
	}()
	if rerr := s.config.loginItems.RemoveApp(ctx); rerr != nil {
		s.config.logger.Warn("Failed to remove legacy login item", "error", rerr)
	}
	return nil
}

// migrateMinMaxWindowsWidthInRow: "0" used to mean no limit.
func migrateMinMaxWindowsWidthInRow(ctx context.Context, s *Store) error {
	for _, k := range []Key[int]{KeyWindowMinWidthInRow, KeyWindowMaxWidthInRow} {
		if err := s.replaceValue(ctx, k.name, map[string]string{"0": "1"}); err != nil {
			return err
		}
	}
	return nil
}

// migrateBlacklists merges the two legacy newline separated lists into the
// structured blacklist.
func migrateBlacklists(ctx context.Context, s *Store) error {
	var entries []BlacklistEntry
	dontShow, ok, err := s.persisted(ctx, "dontShowBlacklist")
	if err != nil {
		return err
	}
	if ok {
		entries = append(entries, legacyBlacklistEntries(dontShow, HideAlways, IgnoreNone)...)
	}

	disableShortcuts, ok, err := s.persisted(ctx, "disableShortcutsBlacklist")
	if err != nil {
		return err
	}
	if ok {
		onlyFullscreen, _, err := s.persisted(ctx, "disableShortcutsBlacklistOnlyFullscreen")
		if err != nil {
			return err
		}
		ignore := IgnoreAlways
		if onlyFullscreen == "true" {
			ignore = IgnoreWhenFullscreen
		}
		entries = append(entries, legacyBlacklistEntries(disableShortcuts, HideNone, ignore)...)
	}

	if len(entries) == 0 {
		return nil
	}
	if err := s.SetBlacklist(ctx, entries); err != nil {
		return err
	}
	var errs []error
	for _, k := range []string{"dontShowBlacklist", "disableShortcutsBlacklist", "disableShortcutsBlacklistOnlyFullscreen"} {
		errs = append(errs, s.Remove(ctx, k))
	}
	return errors.Join(errs...)
}

// migratePreferencesIndexes realigns codes with the current cases: the
// "active space" choice (1) became "visible" (2), and title truncation
// start and end were swapped to follow the UI order.
func migratePreferencesIndexes(ctx context.Context, s *Store) error {
	for _, suffix := range profileSuffixes {
		if err := s.replaceValue(ctx, KeySpacesToShow.BaseName()+suffix, map[string]string{"1": "2"}); err != nil {
			return err
		}
	}
	for _, suffix := range profileSuffixes {
		if err := s.replaceValue(ctx, KeyTitleTruncation.name+suffix, map[string]string{"0": "2", "2": "0"}); err != nil {
			return err
		}
	}
	return nil
}

// replaceValue rewrites the persisted value of key when it has a replacement.
func (s *Store) replaceValue(ctx context.Context, key string, replacements map[string]string) error {
	old, ok, err := s.persisted(ctx, key)
	if err != nil || !ok {
		return err
	}
	if v, found := replacements[old]; found && v != old {
		return s.put(ctx, key, v)
	}
	return nil
}
