package layout

// Display selects whether a node takes part in layout.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Direction is the main axis of a flex container.
type Direction int

const (
	Row Direction = iota
	Column
)

// Position selects normal flow or absolute placement against the parent.
type Position int

const (
	Relative Position = iota
	Absolute
)

// Overflow controls how content larger than its container is handled.
// Scroll containers never shrink their children along the scroll axis.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Justify distributes free space along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifyStretch
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Flex-relative aliases. Without wrapping or right-to-left text they behave
// like their physical counterparts.
const (
	JustifyFlexStart = JustifyStart
	JustifyFlexEnd   = JustifyEnd
)

// Align positions items along the cross axis.
type Align int

const (
	AlignStretch Align = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignBaseline
)

// Flex-relative aliases.
const (
	AlignFlexStart = AlignStart
	AlignFlexEnd   = AlignEnd
)

// DimensionKind tells how a Dimension resolves.
type DimensionKind int

const (
	DimAuto DimensionKind = iota
	DimLength
	DimPercent
)

// Dimension is an auto, absolute or relative length.
type Dimension struct {
	Kind  DimensionKind
	Value float32
}

// Auto returns the automatic dimension.
func Auto() Dimension { return Dimension{} }

// Length returns an absolute dimension in logical pixels.
func Length(v float32) Dimension { return Dimension{Kind: DimLength, Value: v} }

// Percent returns a dimension relative to the parent, where 1 means 100%.
func Percent(v float32) Dimension { return Dimension{Kind: DimPercent, Value: v} }

// resolve returns the dimension in pixels against a parent size, if it can
// be resolved.
func (d Dimension) resolve(parent AvailableSpace) (float32, bool) {
	switch d.Kind {
	case DimLength:
		return d.Value, true
	case DimPercent:
		if parent.Kind == SpaceDefinite {
			return d.Value * parent.Value, true
		}
	}
	return 0, false
}

// Dimensions pairs a width and a height.
type Dimensions struct {
	Width  Dimension
	Height Dimension
}

// Edges holds per-side lengths.
type Edges struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// Uniform returns edges with the same value on every side.
func Uniform(v float32) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

func (e Edges) horizontal() float32 { return e.Left + e.Right }
func (e Edges) vertical() float32   { return e.Top + e.Bottom }

// Insets positions absolutely placed nodes.
type Insets struct {
	Top    Dimension
	Right  Dimension
	Bottom Dimension
	Left   Dimension
}

// OverflowXY holds the overflow policy per axis.
type OverflowXY struct {
	X Overflow
	Y Overflow
}

// Style is the complete layout description of one node.
type Style struct {
	Display   Display
	Position  Position
	Direction Direction

	Size    Dimensions
	MinSize Dimensions
	MaxSize Dimensions
	Inset   Insets

	Margin  Edges
	Padding Edges
	Border  Edges
	Gap     float32

	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension

	JustifyContent Justify
	AlignItems     Align

	Overflow OverflowXY
}

// DefaultStyle returns the style flexbox assumes for unstyled nodes:
// a row container whose items may shrink.
func DefaultStyle() Style {
	return Style{FlexShrink: 1}
}

// ColumnStyle returns DefaultStyle with a vertical main axis.
func ColumnStyle() Style {
	s := DefaultStyle()
	s.Direction = Column
	return s
}
