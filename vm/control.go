package vm

import (
	"github.com/npillmayer/simplex"
)

// controlOperators returns the bracket operators. They are part of every
// instruction set and cannot be overridden.
func controlOperators() OperatorTable {
	return OperatorTable{
		'[': Niladic("loop", loopStart),
		']': Niladic("loop-end", loopEnd),
		'{': Niladic("if", condStart),
		'}': Niladic("if-end", func(*Machine) {}),
		'(': Niladic("repeat", repeatStart),
		')': Niladic("repeat-end", repeatEnd),
	}
}

// jump sets the instruction pointer to the partner of the current bracket.
// The fetch-execute loop then continues one past it.
func (m *Machine) jump() {
	partner, ok := m.prog.Partner(m.ip)
	if !ok { // cannot happen for resolved programs
		m.halt(errUnpaired(m.ip))
	}
	m.ip = partner
}

// `[` skips the body if fuel is exhausted or the cursor cell is zero.
func loopStart(m *Machine) {
	if !m.HasFuel() || !m.Cell().Truthy() {
		m.jump()
	}
}

// `]` repeats the body while fuel is left and the cursor cell is non-zero.
func loopEnd(m *Machine) {
	if m.HasFuel() && m.Cell().Truthy() {
		m.jump()
	}
}

// `{` skips the body if the cursor cell is zero.
func condStart(m *Machine) {
	if !m.Cell().Truthy() {
		m.jump()
	}
}

// `(` reads the repeat count from its partner `)N`. A count of zero skips
// the body, otherwise a fresh counter is pushed.
func repeatStart(m *Machine) {
	partner, ok := m.prog.Partner(m.ip)
	if !ok {
		m.halt(errUnpaired(m.ip))
	}
	count, err := simplex.ParseValue(m.prog.Tokens[partner].RepeatCount())
	if err != nil {
		m.halt(err)
	}
	if count.IsZero() {
		m.ip = partner
		return
	}
	m.counters.Push(count)
}

// `)N` decrements the innermost counter. When it reaches zero, the counter
// is popped and execution falls through. Otherwise the body is repeated.
func repeatEnd(m *Machine) {
	top, ok := m.counters.Pop()
	if !ok {
		m.halt(errUnpaired(m.ip))
	}
	count := top.(simplex.Value).Minus(simplex.One)
	if count.IsPositive() {
		m.counters.Push(count)
		m.jump()
	}
}
