package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes v at (x, y) after wrapping the coordinates.
func (g *ByteGrid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// At reads the value at (x, y) after wrapping the coordinates.
func (g *ByteGrid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Wrap applies toroidal wrapping to the provided coordinates. Each axis is
// wrapped independently.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	return WrapAxis(x, g.W), WrapAxis(y, g.H)
}

// WrapAxis folds v into [0, n). A non-positive n yields 0.
func WrapAxis(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
