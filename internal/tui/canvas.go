package tui

// Canvas is the draw-mode sketch surface: a square grid of cells the
// user inks with a movable pen. The cell grid is what gets rasterized
// for the recognition service.
type Canvas struct {
	cells [][]bool
	penX  int
	penY  int
	size  int
}

// NewCanvas creates an empty canvas with the given edge length.
func NewCanvas(size int) *Canvas {
	if size < 1 {
		size = 1
	}
	c := &Canvas{size: size}
	c.Clear()
	return c
}

// Size returns the canvas edge length.
func (c *Canvas) Size() int { return c.size }

// Pen returns the current pen position.
func (c *Canvas) Pen() (x, y int) { return c.penX, c.penY }

// MovePen moves the pen by the given delta, clamped to the canvas.
func (c *Canvas) MovePen(dx, dy int) {
	c.penX = clamp(c.penX+dx, 0, c.size-1)
	c.penY = clamp(c.penY+dy, 0, c.size-1)
}

// Toggle flips the cell under the pen.
func (c *Canvas) Toggle() {
	c.cells[c.penY][c.penX] = !c.cells[c.penY][c.penX]
}

// Ink sets the cell under the pen without clearing it on repeat visits.
func (c *Canvas) Ink() {
	c.cells[c.penY][c.penX] = true
}

// Clear erases all cells and resets the pen to the center.
func (c *Canvas) Clear() {
	c.cells = make([][]bool, c.size)
	for i := range c.cells {
		c.cells[i] = make([]bool, c.size)
	}
	c.penX = c.size / 2
	c.penY = c.size / 2
}

// IsEmpty reports whether no cell is inked.
func (c *Canvas) IsEmpty() bool {
	for _, row := range c.cells {
		for _, on := range row {
			if on {
				return false
			}
		}
	}
	return true
}

// Cells returns a copy of the cell grid, safe to hand to a goroutine
// while the user keeps drawing.
func (c *Canvas) Cells() [][]bool {
	out := make([][]bool, len(c.cells))
	for i, row := range c.cells {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
