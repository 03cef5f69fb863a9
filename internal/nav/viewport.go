package nav

// Viewport is the scroll window over a container's rendered rows.
type Viewport struct {
	Offset int
	Height int
}

// Reveal scrolls the minimum distance needed to bring row into view.
func (v *Viewport) Reveal(row, total int) {
	if total <= 0 || row < 0 {
		v.Offset = 0
		return
	}
	if row >= total {
		row = total - 1
	}
	if v.Height <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := total - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if row < v.Offset {
		v.Offset = row
		return
	}
	if upper := v.Offset + v.Height - 1; row > upper {
		v.Offset = row - v.Height + 1
	}
}

// Window returns the half-open row range currently shown.
func (v Viewport) Window(total int) (int, int) {
	if v.Height <= 0 || total <= v.Height {
		return 0, total
	}
	start := v.Offset
	if start < 0 {
		start = 0
	}
	if start > total-v.Height {
		start = total - v.Height
	}
	return start, start + v.Height
}
