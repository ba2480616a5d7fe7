package vm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/grammar"
	"github.com/npillmayer/simplex/slate"
)

// Machine is the live state of a Simplex run. It is exclusively owned by
// the caller driving it and must not be shared between goroutines.
type Machine struct {
	prog     *grammar.Program
	ip       int // instruction pointer
	x, y     int // cursor, shared by all slates
	slates   *slate.Stack
	delta    Direction    // forward direction
	motions  [2]Direction // where operands are read from
	fuel     simplex.Value
	counters *linkedliststack.Stack // active counted repeats
	ops      OperatorTable
	out      Sink
	dump     io.Writer
	report   func(error)

	cellLimit int
	stepLimit uint64
	steps     uint64
}

// New creates a machine for a program, positioned at the first
// instruction.
func New(prog *grammar.Program, opts ...Option) *Machine {
	m := &Machine{
		prog:     prog,
		delta:    Right,
		motions:  [2]Direction{Center, Left},
		counters: linkedliststack.New(),
		ops:      OperatorTable{},
	}
	m.apply(opts...)
	for sym, op := range controlOperators() {
		m.ops[sym] = op
	}
	m.slates = slate.NewStack(m.cellLimit)
	return m
}

// Load replaces the program of a machine and rewinds the instruction
// pointer. Slates, cursor, motions and fuel are kept.
func (m *Machine) Load(prog *grammar.Program) {
	m.prog = prog
	m.ip = 0
	m.counters.Clear()
}

// Program returns the program the machine executes.
func (m *Machine) Program() *grammar.Program {
	return m.prog
}

// IP returns the instruction pointer.
func (m *Machine) IP() int {
	return m.ip
}

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Halted is a predicate: has the instruction pointer run past the end of
// the program?
func (m *Machine) Halted() bool {
	return m.ip >= m.prog.Len()
}

// Run executes the program until the instruction pointer runs past its
// end. It returns an error for fatal conditions, which terminate the run.
// Cancelling ctx halts the machine as well.
func (m *Machine) Run(ctx context.Context) (err error) {
	defer m.recoverHalt(&err)
	tracer().Infof("run program of %d tokens", m.prog.Len())
	for !m.Halted() {
		if m.steps&0x3ff == 0 {
			if err := ctx.Err(); err != nil {
				m.halt(err)
			}
		}
		m.step()
	}
	tracer().P("steps", m.steps).Infof("program halted")
	return nil
}

// Step executes a single instruction. Stepping a halted machine does
// nothing.
func (m *Machine) Step() (err error) {
	defer m.recoverHalt(&err)
	if !m.Halted() {
		m.step()
	}
	return nil
}

func (m *Machine) step() {
	tok := m.prog.Tokens[m.ip]
	m.steps++
	if m.stepLimit > 0 && m.steps > m.stepLimit {
		m.halt(ErrStepLimit)
	}
	tracer().Debugf("#%d %s @(%d,%d)", m.ip, tok, m.x, m.y)
	if tok.Kind == grammar.Number {
		v, err := simplex.ParseValue(tok.Raw)
		if err != nil {
			m.halt(err)
		}
		m.SetCell(v)
	} else if op, ok := m.ops.Lookup(tok.Symbol()); ok {
		m.execute(op)
	} else {
		err := &UnknownOperatorError{Symbol: tok.Raw, Pos: m.ip}
		tracer().P("ip", m.ip).Errorf("undefined operator %s", tok.Raw)
		if m.report != nil {
			m.report(err)
		}
	}
	m.ip++
}

// Halt stops the machine with a fatal error. It must only be called by
// operators, i.e. from within Run or Step, which will return err.
func (m *Machine) Halt(err error) {
	m.halt(err)
}

func (m *Machine) halt(err error) {
	tracer().P("ip", m.ip).Errorf("halt: %v", err)
	panic(haltError{err})
}

func (m *Machine) recoverHalt(err *error) {
	if r := recover(); r != nil {
		h, ok := r.(haltError)
		if !ok {
			panic(r)
		}
		*err = h.error
	}
}

// --- Output ----------------------------------------------------------------

// Output sends text to the output sink. It halts the machine with ErrNoSink
// if no sink is connected.
func (m *Machine) Output(text string) {
	if m.out == nil {
		m.halt(ErrNoSink)
	}
	if err := m.out.Write(text); err != nil {
		m.halt(fmt.Errorf("output failed: %w", err))
	}
}

// Dump writes the current slate to the dump output, one line per row,
// cells rounded to 15 decimal places.
func (m *Machine) Dump() {
	if m.dump == nil {
		return
	}
	var b strings.Builder
	for _, row := range m.Slate().Rows() {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell.Round(15).String())
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(m.dump, b.String()); err != nil {
		m.halt(fmt.Errorf("dump failed: %w", err))
	}
}
