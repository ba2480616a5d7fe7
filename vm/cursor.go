package vm

import (
	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/slate"
)

// --- Cursor ----------------------------------------------------------------

// Position returns the cursor coordinates. The cursor is shared by all
// slates.
func (m *Machine) Position() (x, y int) {
	return m.x, m.y
}

// SetX moves the cursor horizontally to column x, regardless of fuel.
func (m *Machine) SetX(x int) {
	m.x = x
	m.touch(0, 0)
}

// SetY moves the cursor vertically to row y, regardless of fuel.
func (m *Machine) SetY(y int) {
	m.y = y
	m.touch(0, 0)
}

// Slate returns the current slate, creating it if necessary.
func (m *Machine) Slate() *slate.Grid {
	g, err := m.slates.Current(m.x, m.y)
	if err != nil {
		m.halt(err)
	}
	return g
}

// Slates returns the stack of slates of the machine.
func (m *Machine) Slates() *slate.Stack {
	return m.slates
}

// Cell returns the value of the cell under the cursor.
func (m *Machine) Cell() simplex.Value {
	return m.CellAt(0, 0)
}

// CellAt returns the value of the cell at offset (dx, dy) from the cursor.
func (m *Machine) CellAt(dx, dy int) simplex.Value {
	v, err := m.Slate().Get(m.x+dx, m.y+dy)
	if err != nil {
		m.halt(err)
	}
	return v
}

// SetCell writes v into the cell under the cursor.
func (m *Machine) SetCell(v simplex.Value) {
	m.SetCellAt(0, 0, v)
}

// SetCellAt writes v into the cell at offset (dx, dy) from the cursor.
func (m *Machine) SetCellAt(dx, dy int, v simplex.Value) {
	if _, err := m.Slate().Set(m.x+dx, m.y+dy, v); err != nil {
		m.halt(err)
	}
}

func (m *Machine) touch(dx, dy int) {
	m.CellAt(dx, dy)
}

// --- Movement --------------------------------------------------------------

// Move moves the cursor one step in direction d, if fuel is left. The
// destination cell is touched in any case, and fuel is consumed.
func (m *Machine) Move(d Direction) {
	if m.HasFuel() {
		m.x += d.DX
		m.y += d.DY
	}
	m.touch(0, 0)
	m.fuel = m.fuel.Minus(simplex.One)
}

// MoveForward moves the cursor one step in the forward direction.
func (m *Machine) MoveForward() {
	m.Move(m.delta)
}

// Delta returns the forward direction.
func (m *Machine) Delta() Direction {
	return m.delta
}

// Rotate turns the forward direction by 90°, counter-clockwise if
// clockwise is false.
func (m *Machine) Rotate(clockwise bool) {
	if clockwise {
		m.delta = m.delta.TurnRight()
	} else {
		m.delta = m.delta.TurnLeft()
	}
}

// Motions returns the two motion vectors.
func (m *Machine) Motions() [2]Direction {
	return m.motions
}

// SetMotion sets motion vector n (0 or 1).
func (m *Machine) SetMotion(n int, d Direction) {
	m.motions[n] = d
}

// SwapMotions exchanges the two motion vectors.
func (m *Machine) SwapMotions() {
	m.motions[0], m.motions[1] = m.motions[1], m.motions[0]
}

// --- Fuel ------------------------------------------------------------------

// Fuel returns the movement budget left.
func (m *Machine) Fuel() simplex.Value {
	return m.fuel
}

// SetFuel sets the movement budget.
func (m *Machine) SetFuel(fuel simplex.Value) {
	tracer().P("fuel", fuel).Debugf("refuel")
	m.fuel = fuel
}

// HasFuel is a predicate: is the movement budget positive?
func (m *Machine) HasFuel() bool {
	return m.fuel.IsPositive()
}

// --- Slates ----------------------------------------------------------------

// NextSlate moves down the stack of slates.
func (m *Machine) NextSlate() {
	if _, err := m.slates.Advance(m.x, m.y); err != nil {
		m.halt(err)
	}
}

// PreviousSlate moves up the stack of slates.
func (m *Machine) PreviousSlate() {
	if _, err := m.slates.Retreat(m.x, m.y); err != nil {
		m.halt(err)
	}
}

// SlateIndex returns the index of the current slate.
func (m *Machine) SlateIndex() int {
	return m.slates.Index()
}

// Trim removes the outermost row or column of the current slate, at the
// edge motion vector 0 points to. With a center motion nothing happens.
func (m *Machine) Trim() {
	var edge slate.Edge
	switch m.motions[0] {
	case Up:
		edge = slate.Top
	case Down:
		edge = slate.Bottom
	case Left:
		edge = slate.LeftEdge
	case Right:
		edge = slate.RightEdge
	default:
		return
	}
	m.Slate().Trim(edge)
}

// ResetOrigin makes the top left cell of the current slate its origin and
// moves the cursor there.
func (m *Machine) ResetOrigin() {
	m.Slate().Reset()
	m.x, m.y = 0, 0
}
