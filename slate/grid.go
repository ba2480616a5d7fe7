package slate

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/simplex"
)

// ErrExhausted is returned if a slate would have to grow beyond its cell limit.
var ErrExhausted = errors.New("slate resources exhausted")

// DefaultCellLimit is the cell limit machines use unless configured otherwise.
const DefaultCellLimit = 1 << 22

type limitError struct {
	width, height int
	limit         int
}

func (e limitError) Error() string {
	if e.limit <= 0 {
		return fmt.Sprintf("slate of %d x %d cells is not addressable", e.width, e.height)
	}
	return fmt.Sprintf("slate of %d x %d cells exceeds limit of %d cells", e.width, e.height, e.limit)
}

func (e limitError) Unwrap() error {
	return ErrExhausted
}

// Edge selects a border of a grid.
type Edge int8

// Edges of a grid
const (
	NoEdge Edge = iota
	Top
	Bottom
	LeftEdge
	RightEdge
)

// Grid is a slate: a 2D store of decimal cells, logically unbounded in all
// four directions.
//
// Storage is a flat row-major buffer of width × height cells. Logical
// coordinate (x, y) lives at storage column x+offsetX and row y+offsetY.
type Grid struct {
	cells            []simplex.Value
	width, height    int
	offsetX, offsetY int
	limit            int // maximum number of cells, 0 for no limit but maxCells
}

// NewGrid creates a slate holding a single zero cell at the origin.
// If limit > 0, the slate will refuse to grow beyond limit cells.
// DefaultCellLimit is a sensible choice.
func NewGrid(limit int) *Grid {
	return &Grid{
		cells:  make([]simplex.Value, 1),
		width:  1,
		height: 1,
		limit:  limit,
	}
}

// Size returns the dimensions of the store.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Offset returns the storage position of the logical origin.
func (g *Grid) Offset() (x, y int) {
	return g.offsetX, g.offsetY
}

// Bounds returns the logical coordinates of the top left and bottom right
// cells of the store. For an empty store max < min.
func (g *Grid) Bounds() (minX, minY, maxX, maxY int) {
	return -g.offsetX, -g.offsetY, g.width - 1 - g.offsetX, g.height - 1 - g.offsetY
}

// EnsureCovers expands the store, if necessary, so that both (x, y) and the
// origin are addressable. It never shrinks the store.
func (g *Grid) EnsureCovers(x, y int) error {
	col, row := x+g.offsetX, y+g.offsetY
	left := max(0, -col, -g.offsetX)
	top := max(0, -row, -g.offsetY)
	w := max(g.width, col+1, g.offsetX+1) + left
	h := max(g.height, row+1, g.offsetY+1) + top
	if left == 0 && top == 0 && w == g.width && h == g.height {
		return nil
	}
	if !g.fits(w, h) {
		tracer().P("size", fmt.Sprintf("%d x %d", w, h)).Errorf("slate would exceed cell limit")
		return limitError{width: w, height: h, limit: g.limit}
	}
	cells := make([]simplex.Value, w*h)
	for r := 0; r < g.height; r++ {
		copy(cells[(r+top)*w+left:], g.cells[r*g.width:(r+1)*g.width])
	}
	g.cells, g.width, g.height = cells, w, h
	g.offsetX += left
	g.offsetY += top
	tracer().Debugf("slate grown to %d x %d, origin at (%d,%d)", w, h, g.offsetX, g.offsetY)
	return nil
}

// Get returns the cell at logical coordinates (x, y).
func (g *Grid) Get(x, y int) (simplex.Value, error) {
	if err := g.EnsureCovers(x, y); err != nil {
		return simplex.Zero, err
	}
	return g.cells[g.index(x, y)], nil
}

// Set writes v into the cell at logical coordinates (x, y) and returns v.
func (g *Grid) Set(x, y int, v simplex.Value) (simplex.Value, error) {
	if err := g.EnsureCovers(x, y); err != nil {
		return simplex.Zero, err
	}
	g.cells[g.index(x, y)] = v
	return v, nil
}

// maxCells bounds slates without a cell limit.
const maxCells = math.MaxInt32

// fits checks w × h against the cell limit without overflowing.
func (g *Grid) fits(w, h int) bool {
	limit := g.limit
	if limit <= 0 || limit > maxCells {
		limit = maxCells
	}
	return w <= limit/h
}

func (g *Grid) index(x, y int) int {
	return (y+g.offsetY)*g.width + x + g.offsetX
}

// Rows returns the rows of the store, top to bottom. The rows share memory
// with the grid and are invalidated by the next modification.
func (g *Grid) Rows() [][]simplex.Value {
	rows := make([][]simplex.Value, g.height)
	for r := range rows {
		rows[r] = g.cells[r*g.width : (r+1)*g.width : (r+1)*g.width]
	}
	return rows
}

// Trim removes the outermost row or column at an edge of the store.
// The remaining cells keep their logical coordinates.
func (g *Grid) Trim(edge Edge) {
	switch edge {
	case Top:
		if g.height > 0 {
			g.cells = g.cells[g.width:]
			g.height--
		}
		g.offsetY--
	case Bottom:
		if g.height > 0 {
			g.height--
			g.cells = g.cells[:g.height*g.width]
		}
	case LeftEdge:
		g.dropColumn(0)
		g.offsetX--
	case RightEdge:
		g.dropColumn(g.width - 1)
	}
	tracer().Debugf("slate trimmed to %d x %d", g.width, g.height)
}

func (g *Grid) dropColumn(c int) {
	if g.width == 0 {
		return
	}
	w := g.width - 1
	cells := make([]simplex.Value, w*g.height)
	for r := 0; r < g.height; r++ {
		row := g.cells[r*g.width : (r+1)*g.width]
		copy(cells[r*w:], row[:c])
		copy(cells[r*w+c:], row[c+1:])
	}
	g.cells, g.width = cells, w
	if w == 0 {
		g.height = 0
		g.cells = nil
	}
}

// Reset moves the logical origin to the top left cell of the store.
func (g *Grid) Reset() {
	g.offsetX, g.offsetY = 0, 0
}
