package vm

import (
	"sort"

	"github.com/npillmayer/simplex"
)

// Arity is the number of operands an operator reads from the slate.
type Arity int8

// NiladicFunc is an operator without operands. It works by side effects only.
type NiladicFunc func(m *Machine)

// MonadicFunc is an operator with one operand. If it returns true, the
// result will be written to the cursor cell.
type MonadicFunc func(m *Machine, a simplex.Value) (simplex.Value, bool)

// DyadicFunc is an operator with two operands. The result will be written
// to the cursor cell.
type DyadicFunc func(m *Machine, a, b simplex.Value) simplex.Value

// Operator is one of the three operator variants, tagged by its arity.
// Create operators with Niladic, Monadic or Dyadic.
type Operator struct {
	Name    string
	arity   Arity
	niladic NiladicFunc
	monadic MonadicFunc
	dyadic  DyadicFunc
}

// Niladic creates an operator without operands.
func Niladic(name string, f NiladicFunc) Operator {
	return Operator{Name: name, arity: 0, niladic: f}
}

// Monadic creates an operator reading one operand via the first motion.
func Monadic(name string, f MonadicFunc) Operator {
	return Operator{Name: name, arity: 1, monadic: f}
}

// Dyadic creates an operator reading two operands via the first and second
// motion.
func Dyadic(name string, f DyadicFunc) Operator {
	return Operator{Name: name, arity: 2, dyadic: f}
}

// Arity returns the number of operands of op.
func (op Operator) Arity() Arity {
	return op.arity
}

func (op Operator) String() string {
	return "#" + op.Name
}

// OperatorTable maps instruction symbols to operators.
type OperatorTable map[rune]Operator

// Define binds an operator to an instruction symbol.
func (tab OperatorTable) Define(sym rune, op Operator) OperatorTable {
	tab[sym] = op
	return tab
}

// Lookup finds the operator for an instruction symbol.
func (tab OperatorTable) Lookup(sym rune) (Operator, bool) {
	op, ok := tab[sym]
	return op, ok
}

// Symbols returns all instruction symbols of a table in ascending order.
func (tab OperatorTable) Symbols() []rune {
	syms := make([]rune, 0, len(tab))
	for sym := range tab {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// execute applies an operator at the current position of the machine.
func (m *Machine) execute(op Operator) {
	switch op.arity {
	case 0:
		op.niladic(m)
	case 1:
		a := m.operand(0)
		if r, ok := op.monadic(m, a); ok {
			m.SetCell(r)
		}
	case 2:
		a, b := m.operand(0), m.operand(1)
		m.SetCell(op.dyadic(m, a, b))
	}
}

// operand reads the n-th operand, following motion n.
func (m *Machine) operand(n int) simplex.Value {
	d := m.motions[n]
	return m.CellAt(d.DX, d.DY)
}
