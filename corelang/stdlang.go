package corelang

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/vm"
)

// ErrCoordinate is raised if a cell value used as a cursor coordinate is
// not an integer in range.
var ErrCoordinate = errors.New("not a valid coordinate")

// Standard returns a fresh operator table with the complete Simplex
// instruction set. Clients may modify the table before handing it to a
// machine with vm.WithOperators.
func Standard() vm.OperatorTable {
	tab := vm.OperatorTable{}
	defineMovement(tab)
	defineMotions(tab)
	defineArithmetic(tab)
	defineSlateOps(tab)
	defineOutput(tab)
	tracer().Debugf("standard language has %d operators", len(tab))
	return tab
}

func move(d vm.Direction) vm.NiladicFunc {
	return func(m *vm.Machine) { m.Move(d) }
}

func defineMovement(tab vm.OperatorTable) {
	tab.Define('>', vm.Niladic("right", move(vm.Right)))
	tab.Define('<', vm.Niladic("left", move(vm.Left)))
	tab.Define('^', vm.Niladic("up", move(vm.Up)))
	tab.Define('v', vm.Niladic("down", move(vm.Down)))
	tab.Define('#', vm.Niladic("forward", func(m *vm.Machine) {
		m.MoveForward()
	}))
	tab.Define('~', vm.Niladic("turn-left", func(m *vm.Machine) {
		m.Rotate(false)
	}))
	tab.Define('`', vm.Niladic("turn-right", func(m *vm.Machine) {
		m.Rotate(true)
	}))
	tab.Define('f', vm.Monadic("fuel", func(m *vm.Machine, a simplex.Value) (simplex.Value, bool) {
		m.SetFuel(a)
		return a, false
	}))
}

func defineMotions(tab vm.OperatorTable) {
	dirs := map[rune]vm.Direction{
		'c': vm.Center, 'r': vm.Right, 'l': vm.Left, 'u': vm.Up, 'd': vm.Down,
	}
	for sym, d := range dirs {
		tab.Define(sym, vm.Niladic("motion0-"+d.String(), setMotion(0, d)))
		upper := sym - 'a' + 'A'
		tab.Define(upper, vm.Niladic("motion1-"+d.String(), setMotion(1, d)))
	}
	tab.Define('$', vm.Niladic("swap", func(m *vm.Machine) {
		m.SwapMotions()
	}))
}

func setMotion(n int, d vm.Direction) vm.NiladicFunc {
	return func(m *vm.Machine) { m.SetMotion(n, d) }
}

func defineArithmetic(tab vm.OperatorTable) {
	tab.Define('+', vm.Dyadic("plus", func(_ *vm.Machine, a, b simplex.Value) simplex.Value {
		return a.Plus(b)
	}))
	tab.Define('-', vm.Dyadic("minus", func(_ *vm.Machine, a, b simplex.Value) simplex.Value {
		return a.Minus(b)
	}))
	tab.Define('*', vm.Dyadic("times", func(_ *vm.Machine, a, b simplex.Value) simplex.Value {
		return a.Times(b)
	}))
	tab.Define('/', vm.Dyadic("over", func(_ *vm.Machine, a, b simplex.Value) simplex.Value {
		return a.Over(b)
	}))
	tab.Define('%', vm.Dyadic("mod", func(_ *vm.Machine, a, b simplex.Value) simplex.Value {
		return a.Mod(b)
	}))
	tab.Define(':', vm.Dyadic("copy", func(_ *vm.Machine, _, b simplex.Value) simplex.Value {
		return b
	}))
	tab.Define('p', vm.Monadic("inc", func(_ *vm.Machine, a simplex.Value) (simplex.Value, bool) {
		return a.Plus(simplex.One), true
	}))
	tab.Define('q', vm.Monadic("dec", func(_ *vm.Machine, a simplex.Value) (simplex.Value, bool) {
		return a.Minus(simplex.One), true
	}))
	tab.Define('_', vm.Monadic("negate", func(_ *vm.Machine, a simplex.Value) (simplex.Value, bool) {
		return simplex.Zero.Minus(a), true
	}))
	tab.Define('N', vm.Niladic("infinity", func(m *vm.Machine) {
		m.SetCell(simplex.Infinity(1))
	}))
}

func defineSlateOps(tab vm.OperatorTable) {
	tab.Define('k', vm.Niladic("trim", func(m *vm.Machine) {
		m.Trim()
	}))
	tab.Define(';', vm.Niladic("reset", func(m *vm.Machine) {
		m.ResetOrigin()
	}))
	tab.Define('x', vm.Niladic("get-x", func(m *vm.Machine) {
		x, _ := m.Position()
		m.SetCell(simplex.FromInt(int64(x)))
	}))
	tab.Define('y', vm.Niladic("get-y", func(m *vm.Machine) {
		_, y := m.Position()
		m.SetCell(simplex.FromInt(int64(y)))
	}))
	tab.Define('X', vm.Monadic("set-x", func(m *vm.Machine, a simplex.Value) (simplex.Value, bool) {
		m.SetX(coordinate(m, a))
		return a, false
	}))
	tab.Define('Y', vm.Monadic("set-y", func(m *vm.Machine, a simplex.Value) (simplex.Value, bool) {
		m.SetY(coordinate(m, a))
		return a, false
	}))
	tab.Define('\'', vm.Niladic("previous-slate", func(m *vm.Machine) {
		m.PreviousSlate()
	}))
	tab.Define('.', vm.Niladic("next-slate", func(m *vm.Machine) {
		m.NextSlate()
	}))
}

func coordinate(m *vm.Machine, a simplex.Value) int {
	c, err := a.Int()
	if err != nil {
		m.Halt(fmt.Errorf("%w: %v", ErrCoordinate, err))
	}
	return c
}

func defineOutput(tab vm.OperatorTable) {
	tab.Define('G', vm.Niladic("dump", func(m *vm.Machine) {
		m.Dump()
	}))
	tab.Define('o', vm.Niladic("output", func(m *vm.Machine) {
		m.Output(m.Cell().String())
	}))
	tab.Define('h', vm.Niladic("output-char", func(m *vm.Machine) {
		r, ok := m.Cell().Rune()
		if !ok {
			tracer().P("cell", m.Cell()).Errorf("not a character code")
			r = utf8.RuneError
		}
		m.Output(string(r))
	}))
}
