package appearance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with an alpha channel.
type Color struct {
	colorful.Color
	Alpha float64
}

// Gray levels matching the platform's named colors.
var (
	White     = gray(1)
	LightGray = gray(2.0 / 3.0)
	Gray      = gray(0.5)
	DarkGray  = gray(1.0 / 3.0)
	Black     = gray(0)
	Clear     = Color{Color: colorful.Color{}, Alpha: 0}
	// Accent is the system accent blue used for highest-visibility borders.
	Accent = mustHex("#007aff")
)

func gray(w float64) Color {
	return Color{Color: colorful.Color{R: w, G: w, B: w}, Alpha: 1}
}

func mustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return Color{Color: c, Alpha: 1}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = a
	return c
}

// IsClear reports whether the color is fully transparent.
func (c Color) IsClear() bool { return c.Alpha == 0 }

// Hex encodes the color as #rrggbbaa.
func (c Color) Hex() string {
	a := uint8(math.Round(clamp01(c.Alpha) * 255))
	return fmt.Sprintf("%s%02x", c.Clamped().Hex(), a)
}

// ParseColor decodes #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, err
		}
		return Color{Color: c, Alpha: 1}, nil
	case 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, err
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: invalid alpha: %w", s, err)
		}
		return Color{Color: c, Alpha: float64(a) / 255}, nil
	default:
		return Color{}, fmt.Errorf("color %q: expected #rrggbb or #rrggbbaa", s)
	}
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Material is the translucent background material of the switcher panel.
type Material string

const (
	MaterialLight       Material = "light"
	MaterialMediumLight Material = "mediumLight"
	MaterialDark        Material = "dark"
	MaterialUltraDark   Material = "ultraDark"
)

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
