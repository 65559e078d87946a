package switcherprefs

import (
	"fmt"
	"strconv"
)

// enumCase pairs a persisted numeric code with its stable name.
type enumCase[E ~int] struct {
	value E
	name  string
}

// enumTable is the closed, ordered list of cases of a macro preference.
type enumTable[E ~int] []enumCase[E]

func (t enumTable[E]) values() []E {
	out := make([]E, len(t))
	for i, c := range t {
		out[i] = c.value
	}
	return out
}

func (t enumTable[E]) name(v E) string {
	for _, c := range t {
		if c.value == v {
			return c.name
		}
	}
	return strconv.Itoa(int(v))
}

func (t enumTable[E]) marshal(v E) ([]byte, error) {
	for _, c := range t {
		if c.value == v {
			return []byte(c.name), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidValue, int(v))
}

// parse accepts either a case name or its numeric code.
func (t enumTable[E]) parse(s string) (E, error) {
	for _, c := range t {
		if c.name == s {
			return c.value, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		for _, c := range t {
			if int(c.value) == n {
				return c.value, nil
			}
		}
	}
	var zero E
	return zero, fmt.Errorf("%w: %q", ErrInvalidValue, s)
}

type ShowHow int

const (
	ShowHowShow         ShowHow = 0
	ShowHowHide         ShowHow = 1
	ShowHowShowAtTheEnd ShowHow = 2
)

var showHowCases = enumTable[ShowHow]{
	{ShowHowShow, "show"},
	{ShowHowHide, "hide"},
	{ShowHowShowAtTheEnd, "showAtTheEnd"},
}

func (v ShowHow) String() string               { return showHowCases.name(v) }
func (v ShowHow) MarshalText() ([]byte, error) { return showHowCases.marshal(v) }
func (v *ShowHow) UnmarshalText(b []byte) (err error) {
	*v, err = showHowCases.parse(string(b))
	return err
}

type WindowOrder int

const (
	WindowOrderRecentlyFocused WindowOrder = 0
	WindowOrderRecentlyCreated WindowOrder = 1
	WindowOrderAlphabetical    WindowOrder = 2
	WindowOrderSpace           WindowOrder = 3
)

var windowOrderCases = enumTable[WindowOrder]{
	{WindowOrderRecentlyFocused, "recentlyFocused"},
	{WindowOrderRecentlyCreated, "recentlyCreated"},
	{WindowOrderAlphabetical, "alphabetical"},
	{WindowOrderSpace, "space"},
}

func (v WindowOrder) String() string               { return windowOrderCases.name(v) }
func (v WindowOrder) MarshalText() ([]byte, error) { return windowOrderCases.marshal(v) }
func (v *WindowOrder) UnmarshalText(b []byte) (err error) {
	*v, err = windowOrderCases.parse(string(b))
	return err
}

type AppsToShow int

const (
	AppsToShowAll    AppsToShow = 0
	AppsToShowActive AppsToShow = 1
)

var appsToShowCases = enumTable[AppsToShow]{
	{AppsToShowAll, "all"},
	{AppsToShowActive, "active"},
}

func (v AppsToShow) String() string               { return appsToShowCases.name(v) }
func (v AppsToShow) MarshalText() ([]byte, error) { return appsToShowCases.marshal(v) }
func (v *AppsToShow) UnmarshalText(b []byte) (err error) {
	*v, err = appsToShowCases.parse(string(b))
	return err
}

// SpacesToShow lost its "active space" case (code 1); codes are not contiguous.
type SpacesToShow int

const (
	SpacesToShowAll     SpacesToShow = 0
	SpacesToShowVisible SpacesToShow = 2
)

var spacesToShowCases = enumTable[SpacesToShow]{
	{SpacesToShowAll, "all"},
	{SpacesToShowVisible, "visible"},
}

func (v SpacesToShow) String() string               { return spacesToShowCases.name(v) }
func (v SpacesToShow) MarshalText() ([]byte, error) { return spacesToShowCases.marshal(v) }
func (v *SpacesToShow) UnmarshalText(b []byte) (err error) {
	*v, err = spacesToShowCases.parse(string(b))
	return err
}

type ScreensToShow int

const (
	ScreensToShowAll             ScreensToShow = 0
	ScreensToShowShowingSwitcher ScreensToShow = 1
)

var screensToShowCases = enumTable[ScreensToShow]{
	{ScreensToShowAll, "all"},
	{ScreensToShowShowingSwitcher, "showingSwitcher"},
}

func (v ScreensToShow) String() string               { return screensToShowCases.name(v) }
func (v ScreensToShow) MarshalText() ([]byte, error) { return screensToShowCases.marshal(v) }
func (v *ScreensToShow) UnmarshalText(b []byte) (err error) {
	*v, err = screensToShowCases.parse(string(b))
	return err
}

type ShortcutStyle int

const (
	ShortcutStyleFocusOnRelease     ShortcutStyle = 0
	ShortcutStyleDoNothingOnRelease ShortcutStyle = 1
)

var shortcutStyleCases = enumTable[ShortcutStyle]{
	{ShortcutStyleFocusOnRelease, "focusOnRelease"},
	{ShortcutStyleDoNothingOnRelease, "doNothingOnRelease"},
}

func (v ShortcutStyle) String() string               { return shortcutStyleCases.name(v) }
func (v ShortcutStyle) MarshalText() ([]byte, error) { return shortcutStyleCases.marshal(v) }
func (v *ShortcutStyle) UnmarshalText(b []byte) (err error) {
	*v, err = shortcutStyleCases.parse(string(b))
	return err
}

type ShowOnScreen int

const (
	ShowOnScreenActive           ShowOnScreen = 0
	ShowOnScreenIncludingMouse   ShowOnScreen = 1
	ShowOnScreenIncludingMenubar ShowOnScreen = 2
)

var showOnScreenCases = enumTable[ShowOnScreen]{
	{ShowOnScreenActive, "active"},
	{ShowOnScreenIncludingMouse, "includingMouse"},
	{ShowOnScreenIncludingMenubar, "includingMenubar"},
}

func (v ShowOnScreen) String() string               { return showOnScreenCases.name(v) }
func (v ShowOnScreen) MarshalText() ([]byte, error) { return showOnScreenCases.marshal(v) }
func (v *ShowOnScreen) UnmarshalText(b []byte) (err error) {
	*v, err = showOnScreenCases.parse(string(b))
	return err
}

// TitleTruncation codes follow the order shown in the UI. Before 6.72.0,
// start and end were stored swapped.
type TitleTruncation int

const (
	TitleTruncationStart  TitleTruncation = 0
	TitleTruncationMiddle TitleTruncation = 1
	TitleTruncationEnd    TitleTruncation = 2
)

var titleTruncationCases = enumTable[TitleTruncation]{
	{TitleTruncationStart, "start"},
	{TitleTruncationMiddle, "middle"},
	{TitleTruncationEnd, "end"},
}

func (v TitleTruncation) String() string               { return titleTruncationCases.name(v) }
func (v TitleTruncation) MarshalText() ([]byte, error) { return titleTruncationCases.marshal(v) }
func (v *TitleTruncation) UnmarshalText(b []byte) (err error) {
	*v, err = titleTruncationCases.parse(string(b))
	return err
}

type ShowAppsOrWindows int

const (
	ShowApplications ShowAppsOrWindows = 0
	ShowWindows      ShowAppsOrWindows = 1
)

var showAppsOrWindowsCases = enumTable[ShowAppsOrWindows]{
	{ShowApplications, "applications"},
	{ShowWindows, "windows"},
}

func (v ShowAppsOrWindows) String() string               { return showAppsOrWindowsCases.name(v) }
func (v ShowAppsOrWindows) MarshalText() ([]byte, error) { return showAppsOrWindowsCases.marshal(v) }
func (v *ShowAppsOrWindows) UnmarshalText(b []byte) (err error) {
	*v, err = showAppsOrWindowsCases.parse(string(b))
	return err
}

type ShowTitles int

const (
	ShowTitlesWindowTitle           ShowTitles = 0
	ShowTitlesAppName               ShowTitles = 1
	ShowTitlesAppNameAndWindowTitle ShowTitles = 2
)

var showTitlesCases = enumTable[ShowTitles]{
	{ShowTitlesWindowTitle, "windowTitle"},
	{ShowTitlesAppName, "appName"},
	{ShowTitlesAppNameAndWindowTitle, "appNameAndWindowTitle"},
}

func (v ShowTitles) String() string               { return showTitlesCases.name(v) }
func (v ShowTitles) MarshalText() ([]byte, error) { return showTitlesCases.marshal(v) }
func (v *ShowTitles) UnmarshalText(b []byte) (err error) {
	*v, err = showTitlesCases.parse(string(b))
	return err
}

type AlignThumbnails int

const (
	AlignThumbnailsLeading AlignThumbnails = 0
	AlignThumbnailsCenter  AlignThumbnails = 1
)

var alignThumbnailsCases = enumTable[AlignThumbnails]{
	{AlignThumbnailsLeading, "leading"},
	{AlignThumbnailsCenter, "center"},
}

func (v AlignThumbnails) String() string               { return alignThumbnailsCases.name(v) }
func (v AlignThumbnails) MarshalText() ([]byte, error) { return alignThumbnailsCases.marshal(v) }
func (v *AlignThumbnails) UnmarshalText(b []byte) (err error) {
	*v, err = alignThumbnailsCases.parse(string(b))
	return err
}

// ThemePreset is the legacy overall look. Only macOS is used at runtime.
type ThemePreset int

const (
	ThemePresetMacOS     ThemePreset = 0
	ThemePresetWindows10 ThemePreset = 1
)

var themePresetCases = enumTable[ThemePreset]{
	{ThemePresetMacOS, "macOS"},
	{ThemePresetWindows10, "windows10"},
}

func (v ThemePreset) String() string               { return themePresetCases.name(v) }
func (v ThemePreset) MarshalText() ([]byte, error) { return themePresetCases.marshal(v) }
func (v *ThemePreset) UnmarshalText(b []byte) (err error) {
	*v, err = themePresetCases.parse(string(b))
	return err
}

type MenubarIcon int

const (
	MenubarIconOutlined MenubarIcon = 0
	MenubarIconFilled   MenubarIcon = 1
	MenubarIconColored  MenubarIcon = 2
	MenubarIconHidden   MenubarIcon = 3
)

var menubarIconCases = enumTable[MenubarIcon]{
	{MenubarIconOutlined, "outlined"},
	{MenubarIconFilled, "filled"},
	{MenubarIconColored, "colored"},
	{MenubarIconHidden, "hidden"},
}

func (v MenubarIcon) String() string               { return menubarIconCases.name(v) }
func (v MenubarIcon) MarshalText() ([]byte, error) { return menubarIconCases.marshal(v) }
func (v *MenubarIcon) UnmarshalText(b []byte) (err error) {
	*v, err = menubarIconCases.parse(string(b))
	return err
}

type UpdatePolicy int

const (
	UpdatePolicyManual      UpdatePolicy = 0
	UpdatePolicyAutoCheck   UpdatePolicy = 1
	UpdatePolicyAutoInstall UpdatePolicy = 2
)

var updatePolicyCases = enumTable[UpdatePolicy]{
	{UpdatePolicyManual, "manual"},
	{UpdatePolicyAutoCheck, "autoCheck"},
	{UpdatePolicyAutoInstall, "autoInstall"},
}

func (v UpdatePolicy) String() string               { return updatePolicyCases.name(v) }
func (v UpdatePolicy) MarshalText() ([]byte, error) { return updatePolicyCases.marshal(v) }
func (v *UpdatePolicy) UnmarshalText(b []byte) (err error) {
	*v, err = updatePolicyCases.parse(string(b))
	return err
}

type CrashPolicy int

const (
	CrashPolicyNever  CrashPolicy = 0
	CrashPolicyAsk    CrashPolicy = 1
	CrashPolicyAlways CrashPolicy = 2
)

var crashPolicyCases = enumTable[CrashPolicy]{
	{CrashPolicyNever, "never"},
	{CrashPolicyAsk, "ask"},
	{CrashPolicyAlways, "always"},
}

func (v CrashPolicy) String() string               { return crashPolicyCases.name(v) }
func (v CrashPolicy) MarshalText() ([]byte, error) { return crashPolicyCases.marshal(v) }
func (v *CrashPolicy) UnmarshalText(b []byte) (err error) {
	*v, err = crashPolicyCases.parse(string(b))
	return err
}

// Language selects the UI language. Zero follows the system.
type Language int

type languageInfo struct {
	name string
	tag  string
}

var languages = []languageInfo{
	{"systemDefault", ""},
	{"arabic", "ar"},
	{"bulgarian", "bg"},
	{"bengali", "bn"},
	{"catalan", "ca"},
	{"czech", "cs"},
	{"danish", "da"},
	{"german", "de"},
	{"greek", "el"},
	{"english", "en"},
	{"spanish", "es"},
	{"estonian", "et"},
	{"persian", "fa"},
	{"finnish", "fi"},
	{"french", "fr"},
	{"galician", "gl"},
	{"hebrew", "he"},
	{"hindi", "hi"},
	{"croatian", "hr"},
	{"hungarian", "hu"},
	{"indonesian", "id"},
	{"icelandic", "is"},
	{"italian", "it"},
	{"japanese", "ja"},
	{"kannada", "kn"},
	{"korean", "ko"},
	{"kurdish", "ku"},
	{"luxembourgish", "lb"},
	{"malayalam", "ml"},
	{"norwegianBokmal", "nb"},
	{"dutch", "nl"},
	{"norwegianNynorsk", "nn"},
	{"polish", "pl"},
	{"portuguese", "pt"},
	{"brazilianPortuguese", "pt-BR"},
	{"romanian", "ro"},
	{"russian", "ru"},
	{"slovak", "sk"},
	{"slovenian", "sl"},
	{"albanian", "sq"},
	{"serbian", "sr"},
	{"swedish", "sv"},
	{"tamil", "ta"},
	{"thai", "th"},
	{"turkish", "tr"},
	{"ukrainian", "uk"},
	{"uzbek", "uz"},
	{"vietnamese", "vi"},
	{"simplifiedChinese", "zh-CN"},
	{"traditionalChinese", "zh-TW"},
}

const LanguageSystemDefault Language = 0

var languageCases = func() enumTable[Language] {
	t := make(enumTable[Language], len(languages))
	for i, l := range languages {
		t[i] = enumCase[Language]{Language(i), l.name}
	}
	return t
}()

// Tag returns the BCP 47 tag for the language, or "" for the system default.
func (v Language) Tag() string {
	if v < 0 || int(v) >= len(languages) {
		return ""
	}
	return languages[v].tag
}

func (v Language) String() string               { return languageCases.name(v) }
func (v Language) MarshalText() ([]byte, error) { return languageCases.marshal(v) }
func (v *Language) UnmarshalText(b []byte) (err error) {
	*v, err = languageCases.parse(string(b))
	return err
}
