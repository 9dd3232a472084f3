package graphics

// DefaultFontSize is used when no font size is specified.
const DefaultFontSize = 14

// FontWeight is a CSS-style numeric weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// FontStretch selects a condensed or expanded face.
type FontStretch int

const (
	StretchNormal FontStretch = iota
	StretchUltraCondensed
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// Wrap controls line breaking.
type Wrap int

const (
	WrapWord Wrap = iota
	WrapChar
	WrapNone
)

// Font describes how a run of text is drawn. Font is comparable, so views
// can skip expensive reshaping when the font did not change.
type Font struct {
	Family        string
	Size          float32
	Weight        FontWeight
	Stretch       FontStretch
	Italic        bool
	Strikethrough bool
	Color         Color
}

// DefaultFont returns the font used when a view does not set one.
func DefaultFont() Font {
	return Font{
		Size:   DefaultFontSize,
		Weight: FontWeightNormal,
		Color:  ColorBlack,
	}
}

// TextSpan applies a font to the byte range [Start, End) of a text.
type TextSpan struct {
	Font  Font
	Start int
	End   int
}
