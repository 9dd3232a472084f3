package layout

type sizeKey struct {
	known Known
	avail Space
}

// axis maps main/cross coordinates to physical ones for a flex direction.
type axis struct {
	row bool
}

func (a axis) main(s Size) float32 {
	if a.row {
		return s.Width
	}
	return s.Height
}

func (a axis) cross(s Size) float32 {
	if a.row {
		return s.Height
	}
	return s.Width
}

func (a axis) size(main, cross float32) Size {
	if a.row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a axis) point(main, cross float32) Point {
	if a.row {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

func (a axis) space(s Space) (main, cross AvailableSpace) {
	if a.row {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func (a axis) makeSpace(main, cross AvailableSpace) Space {
	if a.row {
		return Space{Width: main, Height: cross}
	}
	return Space{Width: cross, Height: main}
}

func (a axis) known(k Known) (main float32, hasMain bool, cross float32, hasCross bool) {
	if a.row {
		return k.Width, k.HasWidth, k.Height, k.HasHeight
	}
	return k.Height, k.HasHeight, k.Width, k.HasWidth
}

func (a axis) makeKnown(main float32, hasMain bool, cross float32, hasCross bool) Known {
	if a.row {
		return Known{Width: main, HasWidth: hasMain, Height: cross, HasHeight: hasCross}
	}
	return Known{Width: cross, HasWidth: hasCross, Height: main, HasHeight: hasMain}
}

func (a axis) dims(d Dimensions) (main, cross Dimension) {
	if a.row {
		return d.Width, d.Height
	}
	return d.Height, d.Width
}

// edges returns start+end totals and the start offsets along both axes.
func (a axis) edges(e Edges) (main, cross, mainStart, crossStart float32) {
	if a.row {
		return e.horizontal(), e.vertical(), e.Left, e.Top
	}
	return e.vertical(), e.horizontal(), e.Top, e.Left
}

func (a axis) overflow(o OverflowXY) Overflow {
	if a.row {
		return o.X
	}
	return o.Y
}

func (e Edges) add(o Edges) Edges {
	return Edges{
		Top:    e.Top + o.Top,
		Right:  e.Right + o.Right,
		Bottom: e.Bottom + o.Bottom,
		Left:   e.Left + o.Left,
	}
}

func shrinkSpace(a AvailableSpace, by float32) AvailableSpace {
	if a.Kind != SpaceDefinite {
		return a
	}
	return Definite(max(0, a.Value-by))
}

func clampDim(v float32, lo, hi Dimension, parent AvailableSpace) float32 {
	if m, ok := hi.resolve(parent); ok && v > m {
		v = m
	}
	if m, ok := lo.resolve(parent); ok && v < m {
		v = m
	}
	return v
}

// resolveKnown fills the axes a style fixes that the parent did not.
func (s *Style) resolveKnown(known Known, avail Space) Known {
	if !known.HasWidth {
		if v, ok := s.Size.Width.resolve(avail.Width); ok {
			known.Width = clampDim(v, s.MinSize.Width, s.MaxSize.Width, avail.Width)
			known.HasWidth = true
		}
	}
	if !known.HasHeight {
		if v, ok := s.Size.Height.resolve(avail.Height); ok {
			known.Height = clampDim(v, s.MinSize.Height, s.MaxSize.Height, avail.Height)
			known.HasHeight = true
		}
	}
	return known
}

// computeSize returns the border-box size of a node. When perform is set the
// node and its descendants get their final layouts; otherwise the result is
// a measurement and is cached for the current Compute call.
func (t *Tree) computeSize(id NodeID, known Known, avail Space, perform bool) Size {
	n := t.nodes[id]
	if n.style.Display == DisplayNone {
		if perform {
			t.hide(id)
		}
		return Size{}
	}
	key := sizeKey{known: known, avail: avail}
	if !perform {
		if s, ok := n.cache[key]; ok {
			return s
		}
	}

	var size, content Size
	if len(n.children) == 0 {
		size, content = t.leafSize(n, known, avail)
	} else {
		size, content = t.flexSize(n, known, avail, perform)
	}

	if perform {
		n.layout.Size = size
		n.layout.Border = n.style.Border
		n.layout.Padding = n.style.Padding
		n.layout.ContentSize = content
		n.computed = true
	} else {
		if n.cache == nil {
			n.cache = make(map[sizeKey]Size)
		}
		n.cache[key] = size
	}
	return size
}

func (t *Tree) hide(id NodeID) {
	n := t.nodes[id]
	n.layout = Layout{}
	n.computed = true
	for _, child := range n.children {
		t.hide(child)
	}
}

func (t *Tree) leafSize(n *node, known Known, avail Space) (Size, Size) {
	s := &n.style
	known = s.resolveKnown(known, avail)
	pb := s.Padding.add(s.Border)
	ph, pv := pb.horizontal(), pb.vertical()

	var content Size
	if n.measurer != nil && !(known.HasWidth && known.HasHeight) {
		ck := Known{
			Width:     max(0, known.Width-ph),
			Height:    max(0, known.Height-pv),
			HasWidth:  known.HasWidth,
			HasHeight: known.HasHeight,
		}
		content = n.measurer.Measure(ck, Space{
			Width:  shrinkSpace(avail.Width, ph),
			Height: shrinkSpace(avail.Height, pv),
		})
	}

	size := Size{Width: content.Width + ph, Height: content.Height + pv}
	if known.HasWidth {
		size.Width = known.Width
	} else {
		size.Width = clampDim(size.Width, s.MinSize.Width, s.MaxSize.Width, avail.Width)
	}
	if known.HasHeight {
		size.Height = known.Height
	} else {
		size.Height = clampDim(size.Height, s.MinSize.Height, s.MaxSize.Height, avail.Height)
	}
	size.Width = max(size.Width, ph)
	size.Height = max(size.Height, pv)
	return size, content
}

type flexItem struct {
	id      NodeID
	node    *node
	mMain   float32
	mCross  float32
	mStartM float32
	mStartC float32
	avail   Space
	hyp     float32
	main    float32
	cross   float32
	stretch bool
}

func (t *Tree) flexSize(n *node, known Known, avail Space, perform bool) (Size, Size) {
	s := &n.style
	ax := axis{row: s.Direction == Row}
	known = s.resolveKnown(known, avail)
	pb := s.Padding.add(s.Border)
	pbMain, pbCross, pbMainStart, pbCrossStart := ax.edges(pb)

	outerMainAvail, outerCrossAvail := ax.space(avail)
	knownMain, hasMain, knownCross, hasCross := ax.known(known)
	minMain, minCross := ax.dims(s.MinSize)
	maxMain, maxCross := ax.dims(s.MaxSize)

	mainAvail := shrinkSpace(outerMainAvail, pbMain)
	if hasMain {
		mainAvail = Definite(max(0, knownMain-pbMain))
	}
	crossAvail := shrinkSpace(outerCrossAvail, pbCross)
	if hasCross {
		crossAvail = Definite(max(0, knownCross-pbCross))
	}

	var items []*flexItem
	for _, c := range n.children {
		cn := t.nodes[c]
		if cn.style.Display == DisplayNone {
			if perform {
				t.hide(c)
			}
			continue
		}
		if cn.style.Position == Absolute {
			continue
		}
		it := &flexItem{id: c, node: cn}
		it.mMain, it.mCross, it.mStartM, it.mStartC = ax.edges(cn.style.Margin)
		it.avail = ax.makeSpace(shrinkSpace(mainAvail, it.mMain), shrinkSpace(crossAvail, it.mCross))
		items = append(items, it)
	}

	var gaps float32
	if len(items) > 1 {
		gaps = s.Gap * float32(len(items)-1)
	}

	// Hypothetical main sizes.
	contentMain := gaps
	for _, it := range items {
		cs := &it.node.style
		sizeMain, sizeCross := ax.dims(cs.Size)
		cMinMain, _ := ax.dims(cs.MinSize)
		cMaxMain, _ := ax.dims(cs.MaxSize)
		cpbMain, _, _, _ := ax.edges(cs.Padding.add(cs.Border))

		basis, ok := cs.FlexBasis.resolve(mainAvail)
		if !ok {
			basis, ok = sizeMain.resolve(mainAvail)
		}
		if !ok {
			var k Known
			if _, fixed := sizeCross.resolve(crossAvail); !fixed && hasCross && s.AlignItems == AlignStretch {
				k = ax.makeKnown(0, false, max(0, crossAvail.Value-it.mCross), true)
			}
			basis = ax.main(t.computeSize(it.id, k, it.avail, false))
		}
		it.hyp = max(clampDim(basis, cMinMain, cMaxMain, mainAvail), cpbMain)
		contentMain += it.hyp + it.mMain
	}

	// Container main size.
	var innerMain float32
	if hasMain {
		innerMain = max(0, knownMain-pbMain)
	} else {
		v := contentMain
		if mainAvail.Kind == SpaceDefinite && v > mainAvail.Value {
			v = mainAvail.Value
		}
		innerMain = max(0, clampDim(v+pbMain, minMain, maxMain, outerMainAvail)-pbMain)
	}

	// Resolve flexible lengths.
	free := innerMain - contentMain
	var grow, shrink float32
	for _, it := range items {
		grow += it.node.style.FlexGrow
		shrink += it.node.style.FlexShrink * it.hyp
	}
	for _, it := range items {
		cs := &it.node.style
		it.main = it.hyp
		switch {
		case free > 0 && grow > 0:
			it.main += free * cs.FlexGrow / grow
		case free < 0 && shrink > 0 && ax.overflow(s.Overflow) != OverflowScroll:
			it.main += free * cs.FlexShrink * it.hyp / shrink
		}
		cMinMain, _ := ax.dims(cs.MinSize)
		cMaxMain, _ := ax.dims(cs.MaxSize)
		cpbMain, _, _, _ := ax.edges(cs.Padding.add(cs.Border))
		it.main = max(clampDim(it.main, cMinMain, cMaxMain, mainAvail), cpbMain, 0)
	}

	// Cross sizes.
	var maxItemCross float32
	for _, it := range items {
		cs := &it.node.style
		_, sizeCross := ax.dims(cs.Size)
		_, cMinCross := ax.dims(cs.MinSize)
		_, cMaxCross := ax.dims(cs.MaxSize)
		if v, ok := sizeCross.resolve(crossAvail); ok {
			it.cross = clampDim(v, cMinCross, cMaxCross, crossAvail)
		} else {
			it.stretch = s.AlignItems == AlignStretch
			_, itemCrossAvail := ax.space(it.avail)
			sz := t.computeSize(it.id, ax.makeKnown(it.main, true, 0, false),
				ax.makeSpace(Definite(it.main), itemCrossAvail), false)
			it.cross = ax.cross(sz)
		}
		maxItemCross = max(maxItemCross, it.cross+it.mCross)
	}

	var innerCross float32
	if hasCross {
		innerCross = max(0, knownCross-pbCross)
	} else {
		innerCross = max(0, clampDim(maxItemCross+pbCross, minCross, maxCross, outerCrossAvail)-pbCross)
	}
	for _, it := range items {
		if !it.stretch {
			continue
		}
		cs := &it.node.style
		_, cMinCross := ax.dims(cs.MinSize)
		_, cMaxCross := ax.dims(cs.MaxSize)
		it.cross = max(0, clampDim(innerCross-it.mCross, cMinCross, cMaxCross, crossAvail))
	}

	size := ax.size(innerMain+pbMain, innerCross+pbCross)

	usedMain := gaps
	for _, it := range items {
		usedMain += it.main + it.mMain
	}
	content := ax.size(usedMain+pbMain, maxItemCross+pbCross)
	if !perform {
		return size, content
	}

	// Final layout of items.
	free = innerMain - usedMain
	offset, between := justify(s.JustifyContent, free, len(items))
	pos := pbMainStart + offset
	for _, it := range items {
		t.computeSize(it.id, ax.makeKnown(it.main, true, it.cross, true),
			ax.makeSpace(Definite(it.main), Definite(it.cross)), true)

		var crossOff float32
		switch s.AlignItems {
		case AlignEnd:
			crossOff = innerCross - it.cross - it.mCross
		case AlignCenter:
			crossOff = (innerCross - it.cross - it.mCross) / 2
		}
		pos += it.mStartM
		it.node.layout.Location = ax.point(pos, pbCrossStart+crossOff+it.mStartC)
		pos += it.main + (it.mMain - it.mStartM) + s.Gap + between
	}

	for _, c := range n.children {
		cn := t.nodes[c]
		if cn.style.Display != DisplayNone && cn.style.Position == Absolute {
			t.placeAbsolute(c, cn, size, s)
		}
	}
	return size, content
}

// justify returns the leading offset and the extra space between items.
func justify(j Justify, free float32, count int) (offset, between float32) {
	if count == 0 {
		return 0, 0
	}
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if free <= 0 || count == 1 {
			return 0, 0
		}
		return 0, free / float32(count-1)
	case JustifySpaceAround:
		if free <= 0 {
			return free / 2, 0
		}
		per := free / float32(count)
		return per / 2, per
	case JustifySpaceEvenly:
		if free <= 0 {
			return free / 2, 0
		}
		per := free / float32(count+1)
		return per, per
	}
	return 0, 0
}

// placeAbsolute lays out an absolutely positioned child against the
// parent's padding box.
func (t *Tree) placeAbsolute(id NodeID, n *node, parent Size, ps *Style) {
	cs := &n.style
	b := ps.Border
	cbW := max(0, parent.Width-b.horizontal())
	cbH := max(0, parent.Height-b.vertical())
	spaceW, spaceH := Definite(cbW), Definite(cbH)
	m := cs.Margin

	left, hasL := cs.Inset.Left.resolve(spaceW)
	right, hasR := cs.Inset.Right.resolve(spaceW)
	top, hasT := cs.Inset.Top.resolve(spaceH)
	bottom, hasB := cs.Inset.Bottom.resolve(spaceH)

	var known Known
	if hasL && hasR && cs.Size.Width.Kind == DimAuto {
		known.Width, known.HasWidth = max(0, cbW-left-right-m.horizontal()), true
	}
	if hasT && hasB && cs.Size.Height.Kind == DimAuto {
		known.Height, known.HasHeight = max(0, cbH-top-bottom-m.vertical()), true
	}
	size := t.computeSize(id, known, Space{
		Width:  Definite(max(0, cbW-m.horizontal())),
		Height: Definite(max(0, cbH-m.vertical())),
	}, true)

	var loc Point
	switch {
	case hasL:
		loc.X = b.Left + left + m.Left
	case hasR:
		loc.X = parent.Width - b.Right - right - m.Right - size.Width
	default:
		loc.X = b.Left + ps.Padding.Left + m.Left
	}
	switch {
	case hasT:
		loc.Y = b.Top + top + m.Top
	case hasB:
		loc.Y = parent.Height - b.Bottom - bottom - m.Bottom - size.Height
	default:
		loc.Y = b.Top + ps.Padding.Top + m.Top
	}
	n.layout.Location = loc
}
