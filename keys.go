package switcherprefs

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/CreativeUnicorns/switcherprefs/appearance"
)

// MaxProfiles is the number of independently configurable shortcut profiles.
const MaxProfiles = 5

// PreferencesVersionKey holds the application version that last wrote the domain.
const PreferencesVersionKey = "preferencesVersion"

// Key is a typed preference key. It knows how to convert the persisted string
// to T and back.
type Key[T any] struct {
	name   string
	parse  func(string) (T, error)
	format func(T) (string, error)
}

// Name returns the persisted key.
func (k Key[T]) Name() string { return k.name }

// Parse converts a persisted string to T.
func (k Key[T]) Parse(raw string) (T, error) { return k.parse(raw) }

// Format converts v to its persisted string.
func (k Key[T]) Format(v T) (string, error) { return k.format(v) }

func StringKey(name string) Key[string] {
	return Key[string]{
		name:   name,
		parse:  func(s string) (string, error) { return s, nil },
		format: func(v string) (string, error) { return v, nil },
	}
}

func IntKey(name string) Key[int] {
	return Key[int]{
		name:   name,
		parse:  strconv.Atoi,
		format: func(v int) (string, error) { return strconv.Itoa(v), nil },
	}
}

// BoolKey only accepts "true" and "false".
func BoolKey(name string) Key[bool] {
	return Key[bool]{
		name: name,
		parse: func(s string) (bool, error) {
			switch s {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
		},
		format: func(v bool) (string, error) { return strconv.FormatBool(v), nil },
	}
}

func FloatKey(name string) Key[float64] {
	return Key[float64]{
		name:   name,
		parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		format: func(v float64) (string, error) { return strconv.FormatFloat(v, 'f', -1, 64), nil },
	}
}

// MillisecondsKey persists a duration as a whole number of milliseconds.
func MillisecondsKey(name string) Key[time.Duration] {
	return Key[time.Duration]{
		name: name,
		parse: func(s string) (time.Duration, error) {
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, err
			}
			return time.Duration(n) * time.Millisecond, nil
		},
		format: func(v time.Duration) (string, error) {
			return strconv.FormatInt(v.Milliseconds(), 10), nil
		},
	}
}

// EnumKey persists one of cases as its numeric code. A code that matches no
// case is rejected, which lets reads heal values left behind by removed cases.
func EnumKey[E ~int](name string, cases []E) Key[E] {
	return Key[E]{
		name: name,
		parse: func(s string) (E, error) {
			n, err := strconv.Atoi(s)
			if err != nil {
				var zero E
				return zero, err
			}
			for _, c := range cases {
				if int(c) == n {
					return c, nil
				}
			}
			var zero E
			return zero, fmt.Errorf("%w: no case with code %d", ErrInvalidValue, n)
		},
		format: func(v E) (string, error) {
			for _, c := range cases {
				if c == v {
					return strconv.Itoa(int(v)), nil
				}
			}
			return "", fmt.Errorf("%w: no case with code %d", ErrInvalidValue, int(v))
		},
	}
}

func blacklistKey(name string) Key[[]BlacklistEntry] {
	return Key[[]BlacklistEntry]{name: name, parse: decodeBlacklist, format: encodeBlacklist}
}

// ProfileKey is a preference with one variant per profile. Profile 0 uses the
// bare name; profile i uses the name suffixed with i+1.
type ProfileKey[T any] struct {
	base Key[T]
}

func profileKey[T any](k Key[T]) ProfileKey[T] { return ProfileKey[T]{base: k} }

// BaseName returns the name of the first profile's key.
func (p ProfileKey[T]) BaseName() string { return p.base.name }

// At returns the key for profile i. It panics if i is out of range.
func (p ProfileKey[T]) At(i int) Key[T] {
	if i < 0 || i >= MaxProfiles {
		panic(fmt.Sprintf("switcherprefs: profile index %d out of range", i))
	}
	k := p.base
	k.name = IndexToName(p.base.name, i)
	return k
}

// Keys returns the keys of every profile in order.
func (p ProfileKey[T]) Keys() []Key[T] {
	keys := make([]Key[T], MaxProfiles)
	for i := range keys {
		keys[i] = p.At(i)
	}
	return keys
}

// IndexToName returns the persisted key of profile index for baseName.
func IndexToName(baseName string, index int) string {
	if index == 0 {
		return baseName
	}
	return baseName + strconv.Itoa(index+1)
}

// NameToIndex returns the profile index encoded in the trailing digit of name.
// Names without a trailing digit belong to profile 0.
func NameToIndex(name string) int {
	if name == "" {
		return 0
	}
	last := rune(name[len(name)-1])
	if !unicode.IsDigit(last) {
		return 0
	}
	return int(last-'0') - 1
}

// profileSuffixes lists the suffixes of every profile key variant.
var profileSuffixes = []string{"", "2", "3", "4", "5"}

var (
	KeyHoldShortcut                   = profileKey(StringKey("holdShortcut"))
	KeyNextWindowShortcut             = profileKey(StringKey("nextWindowShortcut"))
	KeyFocusWindowShortcut            = StringKey("focusWindowShortcut")
	KeyPreviousWindowShortcut         = StringKey("previousWindowShortcut")
	KeyCancelShortcut                 = StringKey("cancelShortcut")
	KeyCloseWindowShortcut            = StringKey("closeWindowShortcut")
	KeyMinDeminWindowShortcut         = StringKey("minDeminWindowShortcut")
	KeyToggleFullscreenWindowShortcut = StringKey("toggleFullscreenWindowShortcut")
	KeyQuitAppShortcut                = StringKey("quitAppShortcut")
	KeyHideShowAppShortcut            = StringKey("hideShowAppShortcut")

	KeyArrowKeysEnabled         = BoolKey("arrowKeysEnabled")
	KeyVimKeysEnabled           = BoolKey("vimKeysEnabled")
	KeyMouseHoverEnabled        = BoolKey("mouseHoverEnabled")
	KeyCursorFollowFocusEnabled = BoolKey("cursorFollowFocusEnabled")

	KeyShowMinimizedWindows  = profileKey(EnumKey("showMinimizedWindows", showHowCases.values()))
	KeyShowHiddenWindows     = profileKey(EnumKey("showHiddenWindows", showHowCases.values()))
	KeyShowFullscreenWindows = profileKey(EnumKey("showFullscreenWindows", showHowCases.values()))
	KeyWindowOrder           = profileKey(EnumKey("windowOrder", windowOrderCases.values()))
	KeyAppsToShow            = profileKey(EnumKey("appsToShow", appsToShowCases.values()))
	KeySpacesToShow          = profileKey(EnumKey("spacesToShow", spacesToShowCases.values()))
	KeyScreensToShow         = profileKey(EnumKey("screensToShow", screensToShowCases.values()))
	KeyShortcutStyle         = profileKey(EnumKey("shortcutStyle", shortcutStyleCases.values()))

	KeyShowTabsAsWindows     = BoolKey("showTabsAsWindows")
	KeyHideColoredCircles    = BoolKey("hideColoredCircles")
	KeyWindowDisplayDelay    = MillisecondsKey("windowDisplayDelay")
	KeyFadeOutAnimation      = BoolKey("fadeOutAnimation")
	KeyHideSpaceNumberLabels = BoolKey("hideSpaceNumberLabels")
	KeyHideStatusIcons       = BoolKey("hideStatusIcons")
	KeyStartAtLogin          = BoolKey("startAtLogin")
	KeyHideAppBadges         = BoolKey("hideAppBadges")
	KeyHideWindowlessApps    = BoolKey("hideWindowlessApps")
	KeyHideThumbnails        = BoolKey("hideThumbnails")
	KeyPreviewFocusedWindow  = BoolKey("previewFocusedWindow")

	KeyAppearanceStyle      = EnumKey("appearanceStyle", appearance.AllStyles)
	KeyAppearanceSize       = EnumKey("appearanceSize", appearance.AllSizes)
	KeyAppearanceTheme      = EnumKey("appearanceTheme", appearance.AllThemes)
	KeyAppearanceVisibility = EnumKey("appearanceVisibility", appearance.AllVisibilities)
	KeyTheme                = EnumKey("theme", themePresetCases.values())
	KeyShowOnScreen         = EnumKey("showOnScreen", showOnScreenCases.values())
	KeyTitleTruncation      = EnumKey("titleTruncation", titleTruncationCases.values())
	KeyAlignThumbnails      = EnumKey("alignThumbnails", alignThumbnailsCases.values())
	KeyShowAppsOrWindows    = EnumKey("showAppsOrWindows", showAppsOrWindowsCases.values())
	KeyShowTitles           = EnumKey("showTitles", showTitlesCases.values())
	KeyMenubarIcon          = EnumKey("menubarIcon", menubarIconCases.values())
	KeyLanguage             = EnumKey("language", languageCases.values())
	KeyUpdatePolicy         = EnumKey("updatePolicy", updatePolicyCases.values())
	KeyCrashPolicy          = EnumKey("crashPolicy", crashPolicyCases.values())

	KeyBlacklist = blacklistKey("blacklist")

	// Size overrides, applied when KeyEnabledCustomizeAppearanceSize is set.
	// Widths and heights are percentages.
	KeyEnabledCustomizeAppearanceSize = BoolKey("enabledCustomizeAppearanceSize")
	KeyRowsCount                      = IntKey("rowsCount")
	KeyWindowMinWidthInRow            = IntKey("windowMinWidthInRow")
	KeyWindowMaxWidthInRow            = IntKey("windowMaxWidthInRow")
	KeyMaxWidthOnScreen               = IntKey("maxWidthOnScreen")
	KeyMaxHeightOnScreen              = IntKey("maxHeightOnScreen")
	KeyIconSize                       = IntKey("iconSize")
	KeyFontHeight                     = IntKey("fontHeight")
)
