package switcherprefs

import (
	"context"
	"errors"
	"math"

	"github.com/CreativeUnicorns/switcherprefs/appearance"
)

// SizeParameters resolves the layout constants for the stored appearance
// selections. When size customization is enabled, the stored overrides
// replace the resolved values.
func (s *Store) SizeParameters(ctx context.Context) appearance.SizeParameters {
	p := appearance.ResolveSize(
		Get(ctx, s, KeyAppearanceStyle),
		Get(ctx, s, KeyAppearanceSize),
		Get(ctx, s, KeyAppearanceVisibility),
		s.screenIsHorizontal(),
	)
	if !Get(ctx, s, KeyEnabledCustomizeAppearanceSize) {
		return p
	}

	p.MaxWidthOnScreen = float64(Get(ctx, s, KeyMaxWidthOnScreen))
	p.MaxHeightOnScreen = float64(Get(ctx, s, KeyMaxHeightOnScreen))
	p.WindowMinWidthInRow = float64(Get(ctx, s, KeyWindowMinWidthInRow))
	p.WindowMaxWidthInRow = float64(Get(ctx, s, KeyWindowMaxWidthInRow))
	p.RowsCount = float64(Get(ctx, s, KeyRowsCount))
	p.IconSize = float64(Get(ctx, s, KeyIconSize))
	p.FontHeight = float64(Get(ctx, s, KeyFontHeight))
	return p
}

// ThemeParameters resolves the colors and materials for the stored theme,
// resolving the System theme through the host appearance.
func (s *Store) ThemeParameters(ctx context.Context) appearance.ThemeParameters {
	theme := Get(ctx, s, KeyAppearanceTheme).Resolve(s.systemTheme())
	return appearance.ResolveTheme(
		theme,
		Get(ctx, s, KeyAppearanceVisibility),
		Get(ctx, s, KeyAppearanceStyle),
	)
}

// ResetCustomizeSize writes the medium size parameters of the current style
// into the size overrides.
func (s *Store) ResetCustomizeSize(ctx context.Context) error {
	p := appearance.ResolveSize(
		Get(ctx, s, KeyAppearanceStyle),
		appearance.Medium,
		Get(ctx, s, KeyAppearanceVisibility),
		s.screenIsHorizontal(),
	)

	overrides := []struct {
		key   Key[int]
		value float64
	}{
		{KeyMaxWidthOnScreen, p.MaxWidthOnScreen},
		{KeyMaxHeightOnScreen, p.MaxHeightOnScreen},
		{KeyWindowMinWidthInRow, p.WindowMinWidthInRow},
		{KeyWindowMaxWidthInRow, p.WindowMaxWidthInRow},
		{KeyRowsCount, p.RowsCount},
		{KeyIconSize, p.IconSize},
		{KeyFontHeight, p.FontHeight},
	}

	var errs []error
	for _, o := range overrides {
		errs = append(errs, Set(ctx, s, o.key, int(math.Round(o.value))))
	}
	return errors.Join(errs...)
}

// OnlyShowApplications reports whether the switcher lists applications rather
// than windows. Thumbnails always show windows.
func (s *Store) OnlyShowApplications(ctx context.Context) bool {
	return Get(ctx, s, KeyShowAppsOrWindows) == ShowApplications &&
		Get(ctx, s, KeyAppearanceStyle) != appearance.Thumbnails
}
