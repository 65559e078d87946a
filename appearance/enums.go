// Package appearance derives the switcher's layout and color constants from the
// user's style, size, theme and visibility selections.
//
// Everything in this package is a pure function of its inputs: no state, no I/O.
// Callers own the stored selections and any screen or system-appearance lookups.
package appearance

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownValue is returned when a code or name does not match any variant.
var ErrUnknownValue = errors.New("unknown appearance value")

// Style is the top-level visual mode of the switcher.
type Style int

const (
	Thumbnails Style = iota
	AppIcons
	Titles
)

// AllStyles lists every Style in display order.
var AllStyles = []Style{Thumbnails, AppIcons, Titles}

// Size is the coarse scale selector.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

// AllSizes lists every Size in display order.
var AllSizes = []Size{Small, Medium, Large}

// Theme is the user's theme selection. System must be resolved to a concrete
// ThemeName before it can drive ResolveTheme.
type Theme int

const (
	Light Theme = iota
	Dark
	System
)

// AllThemes lists every Theme in display order.
var AllThemes = []Theme{Light, Dark, System}

// Visibility is the contrast tier.
type Visibility int

const (
	Normal Visibility = iota
	High
	Highest
)

// AllVisibilities lists every Visibility in display order.
var AllVisibilities = []Visibility{Normal, High, Highest}

// ThemeName is a concrete, resolved theme.
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

var (
	styleNames      = []string{"thumbnails", "appIcons", "titles"}
	sizeNames       = []string{"small", "medium", "large"}
	themeNames      = []string{"light", "dark", "system"}
	visibilityNames = []string{"normal", "high", "highest"}
)

// Code returns the persisted representation.
func (s Style) Code() string { return strconv.Itoa(int(s)) }

func (s Style) String() string { return nameOf(styleNames, int(s)) }

// MarshalText encodes the variant by name.
func (s Style) MarshalText() ([]byte, error) { return marshalName(styleNames, int(s)) }

// UnmarshalText accepts a name or a numeric code.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStyle parses a name ("titles") or a persisted code ("2").
func ParseStyle(s string) (Style, error) {
	i, err := parseVariant(styleNames, s)
	return Style(i), err
}

func (s Size) Code() string { return strconv.Itoa(int(s)) }

func (s Size) String() string { return nameOf(sizeNames, int(s)) }

func (s Size) MarshalText() ([]byte, error) { return marshalName(sizeNames, int(s)) }

func (s *Size) UnmarshalText(b []byte) error {
	v, err := ParseSize(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSize parses a name or a persisted code.
func ParseSize(s string) (Size, error) {
	i, err := parseVariant(sizeNames, s)
	return Size(i), err
}

func (t Theme) Code() string { return strconv.Itoa(int(t)) }

func (t Theme) String() string { return nameOf(themeNames, int(t)) }

func (t Theme) MarshalText() ([]byte, error) { return marshalName(themeNames, int(t)) }

func (t *Theme) UnmarshalText(b []byte) error {
	v, err := ParseTheme(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTheme parses a name or a persisted code.
func ParseTheme(s string) (Theme, error) {
	i, err := parseVariant(themeNames, s)
	return Theme(i), err
}

// Resolve maps the selection to a concrete theme. system is only consulted for
// System and may be nil, in which case System resolves to dark.
func (t Theme) Resolve(system func() ThemeName) ThemeName {
	switch t {
	case Light:
		return ThemeLight
	case Dark:
		return ThemeDark
	case System:
		if system == nil {
			return ThemeDark
		}
		if system() == ThemeLight {
			return ThemeLight
		}
		return ThemeDark
	default:
		panic(fmt.Sprintf("appearance: unhandled theme %d", int(t)))
	}
}

func (v Visibility) Code() string { return strconv.Itoa(int(v)) }

func (v Visibility) String() string { return nameOf(visibilityNames, int(v)) }

func (v Visibility) MarshalText() ([]byte, error) { return marshalName(visibilityNames, int(v)) }

func (v *Visibility) UnmarshalText(b []byte) error {
	p, err := ParseVisibility(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVisibility parses a name or a persisted code.
func ParseVisibility(s string) (Visibility, error) {
	i, err := parseVariant(visibilityNames, s)
	return Visibility(i), err
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown(" + strconv.Itoa(i) + ")"
	}
	return names[i]
}

func marshalName(names []string, i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownValue, i)
	}
	return []byte(names[i]), nil
}

func parseVariant(names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < len(names) {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownValue, s)
}
