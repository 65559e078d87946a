package appearance

import "fmt"

// SizeParameters are the layout constants for one style/size/visibility combination.
// Width-in-row and on-screen values are percentages.
type SizeParameters struct {
	WindowPadding       float64 `json:"windowPadding" yaml:"windowPadding"`
	InterCellPadding    float64 `json:"interCellPadding" yaml:"interCellPadding"`
	IntraCellPadding    float64 `json:"intraCellPadding" yaml:"intraCellPadding"`
	EdgeInsetsSize      float64 `json:"edgeInsetsSize" yaml:"edgeInsetsSize"`
	CellCornerRadius    float64 `json:"cellCornerRadius" yaml:"cellCornerRadius"`
	WindowCornerRadius  float64 `json:"windowCornerRadius" yaml:"windowCornerRadius"`
	HideThumbnails      bool    `json:"hideThumbnails" yaml:"hideThumbnails"`
	RowsCount           float64 `json:"rowsCount" yaml:"rowsCount"`
	WindowMinWidthInRow float64 `json:"windowMinWidthInRow" yaml:"windowMinWidthInRow"`
	WindowMaxWidthInRow float64 `json:"windowMaxWidthInRow" yaml:"windowMaxWidthInRow"`
	IconSize            float64 `json:"iconSize" yaml:"iconSize"`
	FontHeight          float64 `json:"fontHeight" yaml:"fontHeight"`
	MaxWidthOnScreen    float64 `json:"maxWidthOnScreen" yaml:"maxWidthOnScreen"`
	MaxHeightOnScreen   float64 `json:"maxHeightOnScreen" yaml:"maxHeightOnScreen"`
}

// ResolveSize computes the layout constants. Non-thumbnail styles report a
// RowsCount of 0, meaning rows are not limited.
func ResolveSize(style Style, size Size, visibility Visibility, screenIsHorizontal bool) SizeParameters {
	var p SizeParameters
	switch style {
	case Thumbnails:
		p = thumbnailsBase(size, screenIsHorizontal)
		if visibility == Highest {
			p.EdgeInsetsSize = 10
			p.CellCornerRadius = 12
		}
	case AppIcons:
		p = appIconsBase(size)
	case Titles:
		p = titlesBase(size, screenIsHorizontal)
	default:
		panic(fmt.Sprintf("appearance: unhandled style %d", int(style)))
	}
	return p
}

func thumbnailsBase(size Size, horizontal bool) SizeParameters {
	p := SizeParameters{
		WindowPadding:       18,
		InterCellPadding:    1,
		IntraCellPadding:    5,
		EdgeInsetsSize:      12,
		CellCornerRadius:    10,
		WindowCornerRadius:  23,
		HideThumbnails:      false,
		WindowMaxWidthInRow: 90,
		MaxWidthOnScreen:    90,
		MaxHeightOnScreen:   80,
	}
	switch size {
	case Small:
		p.RowsCount = 5
		p.WindowMinWidthInRow = 8
		p.IconSize = 25
		p.FontHeight = 14
	case Medium:
		p.RowsCount = 4
		p.WindowMinWidthInRow = 10
		p.IconSize = 30
		p.FontHeight = 15
	case Large:
		p.RowsCount = 3
		p.WindowMinWidthInRow = 10
		p.IconSize = 30
		p.FontHeight = 16
	default:
		panic(fmt.Sprintf("appearance: unhandled size %d", int(size)))
	}
	if !horizontal {
		// small 5→8, medium 4→7, large 3→6
		p.RowsCount += 3
	}
	return p
}

func appIconsBase(size Size) SizeParameters {
	p := SizeParameters{
		WindowPadding:       22,
		InterCellPadding:    1,
		IntraCellPadding:    5,
		EdgeInsetsSize:      5,
		CellCornerRadius:    10,
		WindowCornerRadius:  23,
		HideThumbnails:      true,
		RowsCount:           0,
		WindowMaxWidthInRow: 30,
		FontHeight:          15,
		MaxWidthOnScreen:    95,
		MaxHeightOnScreen:   90,
	}
	switch size {
	case Small:
		p.WindowMinWidthInRow = 5
		p.IconSize = 68
	case Medium:
		p.WindowMinWidthInRow = 6
		p.IconSize = 98
	case Large:
		p.WindowMinWidthInRow = 8
		p.IconSize = 128
	default:
		panic(fmt.Sprintf("appearance: unhandled size %d", int(size)))
	}
	return p
}

func titlesBase(size Size, horizontal bool) SizeParameters {
	p := SizeParameters{
		WindowPadding:       18,
		InterCellPadding:    1,
		IntraCellPadding:    5,
		EdgeInsetsSize:      7,
		CellCornerRadius:    6,
		WindowCornerRadius:  18,
		HideThumbnails:      true,
		RowsCount:           0,
		WindowMinWidthInRow: 60,
		WindowMaxWidthInRow: 90,
		MaxWidthOnScreen:    60,
		MaxHeightOnScreen:   80,
	}
	if !horizontal {
		p.MaxWidthOnScreen = 85
	}
	switch size {
	case Small:
		p.IconSize = 25
		p.FontHeight = 13
	case Medium:
		p.IconSize = 30
		p.FontHeight = 15
	case Large:
		p.IconSize = 40
		p.FontHeight = 20
	default:
		panic(fmt.Sprintf("appearance: unhandled size %d", int(size)))
	}
	return p
}
