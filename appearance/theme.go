package appearance

import "fmt"

// ThemeParameters are the color and material constants for one theme/visibility
// combination. A clear shadow color means no shadow is drawn.
type ThemeParameters struct {
	Material                        Material `json:"material" yaml:"material"`
	FontColor                       Color    `json:"fontColor" yaml:"fontColor"`
	IndicatedIconShadowColor        Color    `json:"indicatedIconShadowColor" yaml:"indicatedIconShadowColor"`
	TitleShadowColor                Color    `json:"titleShadowColor" yaml:"titleShadowColor"`
	ImageShadowColor                Color    `json:"imageShadowColor" yaml:"imageShadowColor"`
	HighlightFocusedBackgroundColor Color    `json:"highlightFocusedBackgroundColor" yaml:"highlightFocusedBackgroundColor"`
	HighlightHoveredBackgroundColor Color    `json:"highlightHoveredBackgroundColor" yaml:"highlightHoveredBackgroundColor"`
	HighlightFocusedBorderColor     Color    `json:"highlightFocusedBorderColor" yaml:"highlightFocusedBorderColor"`
	HighlightHoveredBorderColor     Color    `json:"highlightHoveredBorderColor" yaml:"highlightHoveredBorderColor"`
	HighlightBorderShadowColor      Color    `json:"highlightBorderShadowColor" yaml:"highlightBorderShadowColor"`
	HighlightBorderWidth            float64  `json:"highlightBorderWidth" yaml:"highlightBorderWidth"`
	EnablePanelShadow               bool     `json:"enablePanelShadow" yaml:"enablePanelShadow"`
}

// ResolveTheme computes the color constants. style only affects the border width
// of the highest visibility tier.
func ResolveTheme(theme ThemeName, visibility Visibility, style Style) ThemeParameters {
	var p ThemeParameters
	switch theme {
	case ThemeLight:
		p = lightBase()
	case ThemeDark:
		p = darkBase()
	default:
		panic(fmt.Sprintf("appearance: unhandled theme name %q", string(theme)))
	}

	switch visibility {
	case Normal:
		p.HighlightFocusedBorderColor = Clear
		p.HighlightHoveredBorderColor = Clear
		p.HighlightBorderShadowColor = Clear
		p.HighlightBorderWidth = 0
		p.EnablePanelShadow = false
	case High:
		if theme == ThemeLight {
			p.Material = MaterialMediumLight
			p.ImageShadowColor = LightGray.WithAlpha(0.4)
			p.HighlightFocusedBorderColor = White.WithAlpha(1.0)
			p.HighlightHoveredBorderColor = White.WithAlpha(0.8)
			p.HighlightBorderShadowColor = Black.WithAlpha(0.5)
		} else {
			p.Material = MaterialUltraDark
			p.ImageShadowColor = Gray.WithAlpha(0.4)
			p.HighlightFocusedBorderColor = Gray.WithAlpha(1.0)
			p.HighlightHoveredBorderColor = Gray.WithAlpha(0.8)
			p.HighlightBorderShadowColor = White.WithAlpha(0.5)
		}
		p.HighlightBorderWidth = 1
		p.EnablePanelShadow = true
	case Highest:
		if theme == ThemeLight {
			p.Material = MaterialMediumLight
			p.ImageShadowColor = LightGray.WithAlpha(0.4)
			p.HighlightFocusedBackgroundColor = LightGray.WithAlpha(0.4)
			p.HighlightHoveredBackgroundColor = LightGray.WithAlpha(0.2)
			p.HighlightBorderShadowColor = Black.WithAlpha(0.5)
		} else {
			p.Material = MaterialUltraDark
			p.ImageShadowColor = Gray.WithAlpha(0.4)
			p.HighlightFocusedBackgroundColor = Gray.WithAlpha(0.4)
			p.HighlightHoveredBackgroundColor = Gray.WithAlpha(0.2)
			p.HighlightBorderShadowColor = White.WithAlpha(0.5)
		}
		p.HighlightFocusedBorderColor = Accent
		p.HighlightHoveredBorderColor = Accent.WithAlpha(0.6)
		if style == Titles {
			p.HighlightBorderWidth = 2
		} else {
			p.HighlightBorderWidth = 4
		}
		p.EnablePanelShadow = true
	default:
		panic(fmt.Sprintf("appearance: unhandled visibility %d", int(visibility)))
	}
	return p
}

func lightBase() ThemeParameters {
	return ThemeParameters{
		Material:                        MaterialLight,
		FontColor:                       Black.WithAlpha(0.8),
		IndicatedIconShadowColor:        Clear,
		TitleShadowColor:                Clear,
		ImageShadowColor:                LightGray.WithAlpha(0.8),
		HighlightFocusedBackgroundColor: LightGray.WithAlpha(0.7),
		HighlightHoveredBackgroundColor: LightGray.WithAlpha(0.4),
	}
}

func darkBase() ThemeParameters {
	return ThemeParameters{
		Material:                        MaterialDark,
		FontColor:                       White.WithAlpha(0.9),
		IndicatedIconShadowColor:        DarkGray,
		TitleShadowColor:                DarkGray,
		ImageShadowColor:                Gray.WithAlpha(0.8),
		HighlightFocusedBackgroundColor: Black.WithAlpha(0.5),
		HighlightHoveredBackgroundColor: Black.WithAlpha(0.3),
	}
}
