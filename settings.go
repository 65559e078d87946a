package switcherprefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CreativeUnicorns/switcherprefs/appearance"
)

// Settings is a typed snapshot of every preference of a domain.
type Settings struct {
	HoldShortcut                   [MaxProfiles]string `json:"holdShortcut" yaml:"holdShortcut"`
	NextWindowShortcut             [MaxProfiles]string `json:"nextWindowShortcut" yaml:"nextWindowShortcut"`
	FocusWindowShortcut            string              `json:"focusWindowShortcut" yaml:"focusWindowShortcut"`
	PreviousWindowShortcut         string              `json:"previousWindowShortcut" yaml:"previousWindowShortcut"`
	CancelShortcut                 string              `json:"cancelShortcut" yaml:"cancelShortcut"`
	CloseWindowShortcut            string              `json:"closeWindowShortcut" yaml:"closeWindowShortcut"`
	MinDeminWindowShortcut         string              `json:"minDeminWindowShortcut" yaml:"minDeminWindowShortcut"`
	ToggleFullscreenWindowShortcut string              `json:"toggleFullscreenWindowShortcut" yaml:"toggleFullscreenWindowShortcut"`
	QuitAppShortcut                string              `json:"quitAppShortcut" yaml:"quitAppShortcut"`
	HideShowAppShortcut            string              `json:"hideShowAppShortcut" yaml:"hideShowAppShortcut"`

	ArrowKeysEnabled         bool `json:"arrowKeysEnabled" yaml:"arrowKeysEnabled"`
	VimKeysEnabled           bool `json:"vimKeysEnabled" yaml:"vimKeysEnabled"`
	MouseHoverEnabled        bool `json:"mouseHoverEnabled" yaml:"mouseHoverEnabled"`
	CursorFollowFocusEnabled bool `json:"cursorFollowFocusEnabled" yaml:"cursorFollowFocusEnabled"`

	ShowMinimizedWindows  [MaxProfiles]ShowHow       `json:"showMinimizedWindows" yaml:"showMinimizedWindows"`
	ShowHiddenWindows     [MaxProfiles]ShowHow       `json:"showHiddenWindows" yaml:"showHiddenWindows"`
	ShowFullscreenWindows [MaxProfiles]ShowHow       `json:"showFullscreenWindows" yaml:"showFullscreenWindows"`
	WindowOrder           [MaxProfiles]WindowOrder   `json:"windowOrder" yaml:"windowOrder"`
	AppsToShow            [MaxProfiles]AppsToShow    `json:"appsToShow" yaml:"appsToShow"`
	SpacesToShow          [MaxProfiles]SpacesToShow  `json:"spacesToShow" yaml:"spacesToShow"`
	ScreensToShow         [MaxProfiles]ScreensToShow `json:"screensToShow" yaml:"screensToShow"`
	ShortcutStyle         [MaxProfiles]ShortcutStyle `json:"shortcutStyle" yaml:"shortcutStyle"`

	ShowTabsAsWindows     bool         `json:"showTabsAsWindows" yaml:"showTabsAsWindows"`
	HideColoredCircles    bool         `json:"hideColoredCircles" yaml:"hideColoredCircles"`
	WindowDisplayDelay    Milliseconds `json:"windowDisplayDelay" yaml:"windowDisplayDelay"`
	FadeOutAnimation      bool         `json:"fadeOutAnimation" yaml:"fadeOutAnimation"`
	HideSpaceNumberLabels bool         `json:"hideSpaceNumberLabels" yaml:"hideSpaceNumberLabels"`
	HideStatusIcons       bool         `json:"hideStatusIcons" yaml:"hideStatusIcons"`
	StartAtLogin          bool         `json:"startAtLogin" yaml:"startAtLogin"`
	HideAppBadges         bool         `json:"hideAppBadges" yaml:"hideAppBadges"`
	HideWindowlessApps    bool         `json:"hideWindowlessApps" yaml:"hideWindowlessApps"`
	HideThumbnails        bool         `json:"hideThumbnails" yaml:"hideThumbnails"`
	PreviewFocusedWindow  bool         `json:"previewFocusedWindow" yaml:"previewFocusedWindow"`

	AppearanceStyle      appearance.Style      `json:"appearanceStyle" yaml:"appearanceStyle"`
	AppearanceSize       appearance.Size       `json:"appearanceSize" yaml:"appearanceSize"`
	AppearanceTheme      appearance.Theme      `json:"appearanceTheme" yaml:"appearanceTheme"`
	AppearanceVisibility appearance.Visibility `json:"appearanceVisibility" yaml:"appearanceVisibility"`
	Theme                ThemePreset           `json:"theme" yaml:"theme"`
	ShowOnScreen         ShowOnScreen          `json:"showOnScreen" yaml:"showOnScreen"`
	TitleTruncation      TitleTruncation       `json:"titleTruncation" yaml:"titleTruncation"`
	AlignThumbnails      AlignThumbnails       `json:"alignThumbnails" yaml:"alignThumbnails"`
	ShowAppsOrWindows    ShowAppsOrWindows     `json:"showAppsOrWindows" yaml:"showAppsOrWindows"`
	ShowTitles           ShowTitles            `json:"showTitles" yaml:"showTitles"`
	MenubarIcon          MenubarIcon           `json:"menubarIcon" yaml:"menubarIcon"`
	Language             Language              `json:"language" yaml:"language"`
	UpdatePolicy         UpdatePolicy          `json:"updatePolicy" yaml:"updatePolicy"`
	CrashPolicy          CrashPolicy           `json:"crashPolicy" yaml:"crashPolicy"`

	EnabledCustomizeAppearanceSize bool `json:"enabledCustomizeAppearanceSize" yaml:"enabledCustomizeAppearanceSize"`
	RowsCount                      int  `json:"rowsCount" yaml:"rowsCount"`
	WindowMinWidthInRow            int  `json:"windowMinWidthInRow" yaml:"windowMinWidthInRow"`
	WindowMaxWidthInRow            int  `json:"windowMaxWidthInRow" yaml:"windowMaxWidthInRow"`
	MaxWidthOnScreen               int  `json:"maxWidthOnScreen" yaml:"maxWidthOnScreen"`
	MaxHeightOnScreen              int  `json:"maxHeightOnScreen" yaml:"maxHeightOnScreen"`
	IconSize                       int  `json:"iconSize" yaml:"iconSize"`
	FontHeight                     int  `json:"fontHeight" yaml:"fontHeight"`

	Blacklist []BlacklistEntry `json:"blacklist" yaml:"blacklist"`
}

// Milliseconds is a duration stored as whole milliseconds. JSON carries the
// millisecond count, YAML a duration string such as "100ms".
type Milliseconds time.Duration

func (m Milliseconds) Duration() time.Duration { return time.Duration(m) }

func (m Milliseconds) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, time.Duration(m).Milliseconds(), 10), nil
}

func (m *Milliseconds) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("milliseconds: %w", err)
	}
	*m = Milliseconds(time.Duration(n) * time.Millisecond)
	return nil
}

func (m Milliseconds) MarshalYAML() (interface{}, error) {
	return time.Duration(m).String(), nil
}

// UnmarshalYAML accepts a duration string or a bare millisecond count.
func (m *Milliseconds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*m = Milliseconds(time.Duration(n) * time.Millisecond)
		return nil
	}
	var d time.Duration
	if err := value.Decode(&d); err != nil {
		return fmt.Errorf("milliseconds: %w", err)
	}
	*m = Milliseconds(d)
	return nil
}

// binding maps one Settings field to its persisted key.
type binding struct {
	key    string
	load   func(ctx context.Context, s *Store, st *Settings)
	encode func(st *Settings) (string, error)
}

func bind[T any](k Key[T], field func(*Settings) *T) binding {
	return binding{
		key:    k.name,
		load:   func(ctx context.Context, s *Store, st *Settings) { *field(st) = Get(ctx, s, k) },
		encode: func(st *Settings) (string, error) { return k.format(*field(st)) },
	}
}

func bindProfiles[T any](p ProfileKey[T], field func(*Settings) *[MaxProfiles]T) []binding {
	out := make([]binding, 0, MaxProfiles)
	for i, k := range p.Keys() {
		out = append(out, bind(k, func(st *Settings) *T { return &field(st)[i] }))
	}
	return out
}

var settingsBindings = buildSettingsBindings()

func buildSettingsBindings() []binding {
	var b []binding
	add := func(bs ...binding) { b = append(b, bs...) }

	add(bindProfiles(KeyHoldShortcut, func(st *Settings) *[MaxProfiles]string { return &st.HoldShortcut })...)
	add(bindProfiles(KeyNextWindowShortcut, func(st *Settings) *[MaxProfiles]string { return &st.NextWindowShortcut })...)
	add(
		bind(KeyFocusWindowShortcut, func(st *Settings) *string { return &st.FocusWindowShortcut }),
		bind(KeyPreviousWindowShortcut, func(st *Settings) *string { return &st.PreviousWindowShortcut }),
		bind(KeyCancelShortcut, func(st *Settings) *string { return &st.CancelShortcut }),
		bind(KeyCloseWindowShortcut, func(st *Settings) *string { return &st.CloseWindowShortcut }),
		bind(KeyMinDeminWindowShortcut, func(st *Settings) *string { return &st.MinDeminWindowShortcut }),
		bind(KeyToggleFullscreenWindowShortcut, func(st *Settings) *string { return &st.ToggleFullscreenWindowShortcut }),
		bind(KeyQuitAppShortcut, func(st *Settings) *string { return &st.QuitAppShortcut }),
		bind(KeyHideShowAppShortcut, func(st *Settings) *string { return &st.HideShowAppShortcut }),
		bind(KeyArrowKeysEnabled, func(st *Settings) *bool { return &st.ArrowKeysEnabled }),
		bind(KeyVimKeysEnabled, func(st *Settings) *bool { return &st.VimKeysEnabled }),
		bind(KeyMouseHoverEnabled, func(st *Settings) *bool { return &st.MouseHoverEnabled }),
		bind(KeyCursorFollowFocusEnabled, func(st *Settings) *bool { return &st.CursorFollowFocusEnabled }),
	)
	add(bindProfiles(KeyShowMinimizedWindows, func(st *Settings) *[MaxProfiles]ShowHow { return &st.ShowMinimizedWindows })...)
	add(bindProfiles(KeyShowHiddenWindows, func(st *Settings) *[MaxProfiles]ShowHow { return &st.ShowHiddenWindows })...)
	add(bindProfiles(KeyShowFullscreenWindows, func(st *Settings) *[MaxProfiles]ShowHow { return &st.ShowFullscreenWindows })...)
	add(bindProfiles(KeyWindowOrder, func(st *Settings) *[MaxProfiles]WindowOrder { return &st.WindowOrder })...)
	add(bindProfiles(KeyAppsToShow, func(st *Settings) *[MaxProfiles]AppsToShow { return &st.AppsToShow })...)
	add(bindProfiles(KeySpacesToShow, func(st *Settings) *[MaxProfiles]SpacesToShow { return &st.SpacesToShow })...)
	add(bindProfiles(KeyScreensToShow, func(st *Settings) *[MaxProfiles]ScreensToShow { return &st.ScreensToShow })...)
	add(bindProfiles(KeyShortcutStyle, func(st *Settings) *[MaxProfiles]ShortcutStyle { return &st.ShortcutStyle })...)
	add(
		bind(KeyShowTabsAsWindows, func(st *Settings) *bool { return &st.ShowTabsAsWindows }),
		bind(KeyHideColoredCircles, func(st *Settings) *bool { return &st.HideColoredCircles }),
		bind(KeyWindowDisplayDelay, func(st *Settings) *time.Duration { return (*time.Duration)(&st.WindowDisplayDelay) }),
		bind(KeyFadeOutAnimation, func(st *Settings) *bool { return &st.FadeOutAnimation }),
		bind(KeyHideSpaceNumberLabels, func(st *Settings) *bool { return &st.HideSpaceNumberLabels }),
		bind(KeyHideStatusIcons, func(st *Settings) *bool { return &st.HideStatusIcons }),
		bind(KeyStartAtLogin, func(st *Settings) *bool { return &st.StartAtLogin }),
		bind(KeyHideAppBadges, func(st *Settings) *bool { return &st.HideAppBadges }),
		bind(KeyHideWindowlessApps, func(st *Settings) *bool { return &st.HideWindowlessApps }),
		bind(KeyHideThumbnails, func(st *Settings) *bool { return &st.HideThumbnails }),
		bind(KeyPreviewFocusedWindow, func(st *Settings) *bool { return &st.PreviewFocusedWindow }),
		bind(KeyAppearanceStyle, func(st *Settings) *appearance.Style { return &st.AppearanceStyle }),
		bind(KeyAppearanceSize, func(st *Settings) *appearance.Size { return &st.AppearanceSize }),
		bind(KeyAppearanceTheme, func(st *Settings) *appearance.Theme { return &st.AppearanceTheme }),
		bind(KeyAppearanceVisibility, func(st *Settings) *appearance.Visibility { return &st.AppearanceVisibility }),
		bind(KeyTheme, func(st *Settings) *ThemePreset { return &st.Theme }),
		bind(KeyShowOnScreen, func(st *Settings) *ShowOnScreen { return &st.ShowOnScreen }),
		bind(KeyTitleTruncation, func(st *Settings) *TitleTruncation { return &st.TitleTruncation }),
		bind(KeyAlignThumbnails, func(st *Settings) *AlignThumbnails { return &st.AlignThumbnails }),
		bind(KeyShowAppsOrWindows, func(st *Settings) *ShowAppsOrWindows { return &st.ShowAppsOrWindows }),
		bind(KeyShowTitles, func(st *Settings) *ShowTitles { return &st.ShowTitles }),
		bind(KeyMenubarIcon, func(st *Settings) *MenubarIcon { return &st.MenubarIcon }),
		bind(KeyLanguage, func(st *Settings) *Language { return &st.Language }),
		bind(KeyUpdatePolicy, func(st *Settings) *UpdatePolicy { return &st.UpdatePolicy }),
		bind(KeyCrashPolicy, func(st *Settings) *CrashPolicy { return &st.CrashPolicy }),
		bind(KeyEnabledCustomizeAppearanceSize, func(st *Settings) *bool { return &st.EnabledCustomizeAppearanceSize }),
		bind(KeyRowsCount, func(st *Settings) *int { return &st.RowsCount }),
		bind(KeyWindowMinWidthInRow, func(st *Settings) *int { return &st.WindowMinWidthInRow }),
		bind(KeyWindowMaxWidthInRow, func(st *Settings) *int { return &st.WindowMaxWidthInRow }),
		bind(KeyMaxWidthOnScreen, func(st *Settings) *int { return &st.MaxWidthOnScreen }),
		bind(KeyMaxHeightOnScreen, func(st *Settings) *int { return &st.MaxHeightOnScreen }),
		bind(KeyIconSize, func(st *Settings) *int { return &st.IconSize }),
		bind(KeyFontHeight, func(st *Settings) *int { return &st.FontHeight }),
		bind(KeyBlacklist, func(st *Settings) *[]BlacklistEntry { return &st.Blacklist }),
	)
	return b
}

// Snapshot reads every preference into a Settings value.
func (s *Store) Snapshot(ctx context.Context) Settings {
	var st Settings
	for _, b := range settingsBindings {
		b.load(ctx, s, &st)
	}
	return st
}

// Entries encodes every field to its persisted key and string value.
func (st Settings) Entries() (map[string]string, error) {
	out := make(map[string]string, len(settingsBindings))
	for _, b := range settingsBindings {
		v, err := b.encode(&st)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", b.key, err)
		}
		out[b.key] = v
	}
	return out, nil
}

// Apply persists the fields of st whose value differs from what the store
// currently returns. Values equal to the default stay unpersisted. It returns
// the keys written.
func (s *Store) Apply(ctx context.Context, st Settings) ([]string, error) {
	entries, err := st.Entries()
	if err != nil {
		return nil, err
	}
	var written []string
	for _, b := range settingsBindings {
		want := entries[b.key]
		current, err := s.GetString(ctx, b.key)
		if err == nil && current == want {
			continue
		}
		if err := s.SetString(ctx, b.key, want); err != nil {
			return written, err
		}
		written = append(written, b.key)
	}
	return written, nil
}
