package switcherprefs

import (
	"sort"
	"strconv"

	"github.com/CreativeUnicorns/switcherprefs/appearance"
)

// Preference categories.
const (
	CategoryShortcuts  = "shortcuts"
	CategoryControls   = "controls"
	CategoryAppearance = "appearance"
	CategoryGeneral    = "general"
	CategoryBlacklist  = "blacklist"
)

// Definition describes a known preference key and its registered default.
type Definition struct {
	Key      string `json:"key" yaml:"key"`
	Category string `json:"category" yaml:"category"`
	// Default is the static default. Keys whose default depends on the host
	// (screen ratio, keyboard layout) report it through Store.Default.
	Default string `json:"default" yaml:"default"`
	Dynamic bool   `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`

	validate func(raw string) error
	dynamic  func(s *Store) string
}

func define[T any](category string, k Key[T], def string) Definition {
	return Definition{
		Key:      k.name,
		Category: category,
		Default:  def,
		validate: func(raw string) error {
			_, err := k.parse(raw)
			return err
		},
	}
}

func defineProfiles[T any](category string, p ProfileKey[T], defs ...string) []Definition {
	out := make([]Definition, 0, MaxProfiles)
	for i, k := range p.Keys() {
		def := defs[0]
		if i < len(defs) {
			def = defs[i]
		}
		out = append(out, define(category, k, def))
	}
	return out
}

func dynamicDefault(d Definition, fn func(*Store) string) Definition {
	d.Dynamic = true
	d.dynamic = fn
	return d
}

func code[E ~int](v E) string { return strconv.Itoa(int(v)) }

// rowsCountDefault fits more rows unless the screen is strictly landscape.
func rowsCountDefault(s *Store) string {
	if s.screenRatio() > 1 {
		return "4"
	}
	return "6"
}

func nextWindowShortcut2Default(s *Store) string {
	return s.config.keyAboveTab
}

var definitionList = buildDefinitions()

var definitionsByKey = func() map[string]Definition {
	m := make(map[string]Definition, len(definitionList))
	for _, d := range definitionList {
		m[d.Key] = d
	}
	return m
}()

func buildDefinitions() []Definition {
	show := code(ShowHowShow)
	var defs []Definition
	add := func(d ...Definition) { defs = append(defs, d...) }

	add(defineProfiles(CategoryShortcuts, KeyHoldShortcut, "⌥")...)
	next := defineProfiles(CategoryShortcuts, KeyNextWindowShortcut, "⇥", DefaultKeyAboveTab, "", "", "")
	next[1] = dynamicDefault(next[1], nextWindowShortcut2Default)
	add(next...)
	add(
		define(CategoryShortcuts, KeyFocusWindowShortcut, "Space"),
		define(CategoryShortcuts, KeyPreviousWindowShortcut, "⇧"),
		define(CategoryShortcuts, KeyCancelShortcut, "⎋"),
		define(CategoryShortcuts, KeyCloseWindowShortcut, "W"),
		define(CategoryShortcuts, KeyMinDeminWindowShortcut, "M"),
		define(CategoryShortcuts, KeyToggleFullscreenWindowShortcut, "F"),
		define(CategoryShortcuts, KeyQuitAppShortcut, "Q"),
		define(CategoryShortcuts, KeyHideShowAppShortcut, "H"),
		define(CategoryControls, KeyArrowKeysEnabled, "true"),
		define(CategoryControls, KeyVimKeysEnabled, "false"),
		define(CategoryControls, KeyMouseHoverEnabled, "false"),
		define(CategoryControls, KeyCursorFollowFocusEnabled, "false"),
	)
	add(defineProfiles(CategoryControls, KeyShowMinimizedWindows, show)...)
	add(defineProfiles(CategoryControls, KeyShowHiddenWindows, show)...)
	add(defineProfiles(CategoryControls, KeyShowFullscreenWindows, show)...)
	add(defineProfiles(CategoryControls, KeyWindowOrder, code(WindowOrderRecentlyFocused))...)
	add(defineProfiles(CategoryControls, KeyAppsToShow,
		code(AppsToShowAll), code(AppsToShowActive), code(AppsToShowAll), code(AppsToShowAll), code(AppsToShowAll))...)
	add(defineProfiles(CategoryControls, KeySpacesToShow, code(SpacesToShowAll))...)
	add(defineProfiles(CategoryControls, KeyScreensToShow, code(ScreensToShowAll))...)
	add(defineProfiles(CategoryControls, KeyShortcutStyle, code(ShortcutStyleFocusOnRelease))...)
	add(
		define(CategoryAppearance, KeyShowTabsAsWindows, "false"),
		define(CategoryAppearance, KeyHideColoredCircles, "false"),
		define(CategoryAppearance, KeyWindowDisplayDelay, "100"),
		define(CategoryAppearance, KeyFadeOutAnimation, "false"),
		define(CategoryAppearance, KeyHideSpaceNumberLabels, "false"),
		define(CategoryAppearance, KeyHideStatusIcons, "false"),
		define(CategoryAppearance, KeyHideAppBadges, "false"),
		define(CategoryAppearance, KeyHideWindowlessApps, "false"),
		define(CategoryAppearance, KeyHideThumbnails, "false"),
		define(CategoryAppearance, KeyPreviewFocusedWindow, "false"),
		define(CategoryAppearance, KeyAppearanceStyle, appearance.Thumbnails.Code()),
		define(CategoryAppearance, KeyAppearanceSize, appearance.Medium.Code()),
		define(CategoryAppearance, KeyAppearanceTheme, appearance.System.Code()),
		define(CategoryAppearance, KeyAppearanceVisibility, appearance.Normal.Code()),
		define(CategoryAppearance, KeyTheme, code(ThemePresetMacOS)),
		define(CategoryAppearance, KeyShowOnScreen, code(ShowOnScreenActive)),
		define(CategoryAppearance, KeyTitleTruncation, code(TitleTruncationEnd)),
		define(CategoryAppearance, KeyAlignThumbnails, code(AlignThumbnailsCenter)),
		define(CategoryAppearance, KeyShowAppsOrWindows, code(ShowWindows)),
		define(CategoryAppearance, KeyShowTitles, code(ShowTitlesWindowTitle)),
		define(CategoryAppearance, KeyEnabledCustomizeAppearanceSize, "false"),
		dynamicDefault(define(CategoryAppearance, KeyRowsCount, "4"), rowsCountDefault),
		define(CategoryAppearance, KeyWindowMinWidthInRow, "15"),
		define(CategoryAppearance, KeyWindowMaxWidthInRow, "30"),
		define(CategoryAppearance, KeyMaxWidthOnScreen, "80"),
		define(CategoryAppearance, KeyMaxHeightOnScreen, "80"),
		define(CategoryAppearance, KeyIconSize, "32"),
		define(CategoryAppearance, KeyFontHeight, "15"),
		define(CategoryGeneral, KeyStartAtLogin, "true"),
		define(CategoryGeneral, KeyMenubarIcon, code(MenubarIconOutlined)),
		define(CategoryGeneral, KeyLanguage, code(LanguageSystemDefault)),
		define(CategoryGeneral, KeyUpdatePolicy, code(UpdatePolicyAutoCheck)),
		define(CategoryGeneral, KeyCrashPolicy, code(CrashPolicyAsk)),
		define(CategoryBlacklist, KeyBlacklist, mustEncodeBlacklist(DefaultBlacklist())),
	)
	return defs
}

func mustEncodeBlacklist(entries []BlacklistEntry) string {
	s, err := encodeBlacklist(entries)
	if err != nil {
		panic(err)
	}
	return s
}

// Definitions returns every known preference, sorted by key.
func Definitions() []Definition {
	out := make([]Definition, len(definitionList))
	copy(out, definitionList)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// LookupDefinition returns the definition of key.
func LookupDefinition(key string) (Definition, bool) {
	d, ok := definitionsByKey[key]
	return d, ok
}
