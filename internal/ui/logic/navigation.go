package logic

// Viewport tracks which slice of the option list is on screen
type Viewport struct {
	Offset int
	Height int
}

// NewViewport creates a viewport showing height rows
func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{Height: height}
}

// SetHeight resizes the viewport and keeps index visible
func (v *Viewport) SetHeight(height, index, total int) {
	if height < 1 {
		height = 1
	}
	v.Height = height
	v.EnsureVisible(index, total)
}

// Top scrolls back to the first row
func (v *Viewport) Top() {
	v.Offset = 0
}

// Indicators reports whether the "more above" and "more below" rows are shown
func (v *Viewport) Indicators(total int) (top, bottom bool) {
	top = v.Offset > 0
	bottom = v.Offset+v.Height < total
	if !bottom && top {
		if total-v.Offset > v.Height-1 {
			bottom = true
		}
	}
	return top, bottom
}

// Rows returns how many option rows fit once the indicators are drawn
func (v *Viewport) Rows(total int) int {
	top, bottom := v.Indicators(total)
	rows := v.Height
	if top {
		rows--
	}
	if bottom {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Window returns the half-open range of option indices to draw
func (v *Viewport) Window(total int) (start, end int) {
	start = v.Offset
	end = start + v.Rows(total)
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return start, end
}

// EnsureVisible adjusts the offset so index is on screen. A negative index
// leaves the viewport where it is.
func (v *Viewport) EnsureVisible(index, total int) {
	if index >= 0 && index < v.Offset {
		v.Offset = index
	}

	rows := v.Rows(total)
	if index >= v.Offset+rows {
		v.Offset = index - rows + 1
		rows = v.Rows(total)
		// indicators may have appeared and eaten a row
		if index >= v.Offset+rows {
			v.Offset = index - rows + 1
		}
	}

	maxOffset := total - v.Rows(total)
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// Scroll moves the window by delta rows, staying within bounds
func (v *Viewport) Scroll(delta, total int) {
	v.Offset += delta
	v.EnsureVisible(-1, total)
}
