package vm

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/grammar"
	"github.com/npillmayer/simplex/slate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOps is a small instruction set, enough to drive the control flow.
func testOps() OperatorTable {
	return OperatorTable{
		'>': Niladic("right", func(m *Machine) { m.Move(Right) }),
		'<': Niladic("left", func(m *Machine) { m.Move(Left) }),
		'#': Niladic("forward", func(m *Machine) { m.MoveForward() }),
		'~': Niladic("turn-left", func(m *Machine) { m.Rotate(false) }),
		'p': Monadic("inc", func(_ *Machine, a simplex.Value) (simplex.Value, bool) {
			return a.Plus(simplex.One), true
		}),
		'q': Monadic("dec", func(_ *Machine, a simplex.Value) (simplex.Value, bool) {
			return a.Minus(simplex.One), true
		}),
		'f': Monadic("fuel", func(m *Machine, a simplex.Value) (simplex.Value, bool) {
			m.SetFuel(a)
			return a, false
		}),
		'+': Dyadic("add", func(_ *Machine, a, b simplex.Value) simplex.Value {
			return a.Plus(b)
		}),
		'o': Niladic("out", func(m *Machine) { m.Output(m.Cell().String()) }),
	}
}

func run(t *testing.T, source string, opts ...Option) (*Machine, error) {
	t.Helper()
	prog, err := grammar.Load(source)
	require.NoError(t, err)
	opts = append([]Option{WithOperators(testOps()), WithReporter(func(error) {})}, opts...)
	m := New(prog, opts...)
	return m, m.Run(context.Background())
}

func TestMachineDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m := New(nil)
	assert.True(t, m.Halted())
	assert.Equal(t, Right, m.Delta())
	assert.Equal(t, [2]Direction{Center, Left}, m.Motions())
	assert.True(t, m.Fuel().IsInf(1))
	x, y := m.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, uint64(0), m.Steps())
}

func TestNumberLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m, err := run(t, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", m.Cell().String())
}

func TestOperandMotions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	// motions are [center, left]: cell + left neighbour
	m, err := run(t, "3>4+")
	require.NoError(t, err)
	assert.Equal(t, "7", m.Cell().String())
	m.SwapMotions()
	assert.Equal(t, [2]Direction{Left, Center}, m.Motions())
}

func TestMovementAndFuel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m, err := run(t, "2f>>>>")
	require.NoError(t, err)
	x, _ := m.Position()
	assert.Equal(t, 2, x, "movement stops when fuel is exhausted")
	assert.False(t, m.HasFuel())
	assert.Equal(t, "-2", m.Fuel().String())
}

func TestForwardAndRotate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m, err := run(t, "#~#~#")
	require.NoError(t, err)
	x, y := m.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, -1, y)
	assert.Equal(t, Left, m.Delta())
}

func TestLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m, err := run(t, "5[>pp<q]>")
	require.NoError(t, err)
	assert.Equal(t, "10", m.Cell().String())
	//
	m, err = run(t, "[p]")
	require.NoError(t, err)
	assert.Equal(t, "0", m.Cell().String(), "loop body must be skipped for zero cell")
}

func TestLoopTerminatesByFuel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	// every cell reached is made non-zero, only fuel ends the loop
	m, err := run(t, "5f[>p]")
	require.NoError(t, err)
	assert.True(t, m.Halted())
	assert.False(t, m.HasFuel())
	x, _ := m.Position()
	assert.Equal(t, 5, x)
}

func TestConditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m, err := run(t, "{p}p")
	require.NoError(t, err)
	assert.Equal(t, "1", m.Cell().String(), "body skipped, trailing p executed")
	m, err = run(t, "1{p}p")
	require.NoError(t, err)
	assert.Equal(t, "3", m.Cell().String())
}

func TestRepeat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	for _, c := range []struct {
		source, result string
	}{
		{"(p)3", "3"},
		{"(p)", "1"},
		{"0(p)0", "0"},
		{"(p)0p", "1"},
		{"((p)3)4", "12"},
		{"(p)2(p)3", "5"},
	} {
		m, err := run(t, c.source)
		require.NoError(t, err, c.source)
		assert.Equal(t, c.result, m.Cell().String(), c.source)
		assert.True(t, m.counters.Empty(), "counters of %q must be popped", c.source)
	}
}

func TestUnknownOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	var reported []error
	m, err := run(t, `p?"str"p`, WithReporter(func(err error) {
		reported = append(reported, err)
	}))
	require.NoError(t, err)
	assert.Equal(t, "2", m.Cell().String())
	require.Len(t, reported, 2)
	var uerr *UnknownOperatorError
	require.True(t, errors.As(reported[0], &uerr))
	assert.Equal(t, "?", uerr.Symbol)
	assert.Equal(t, 1, uerr.Pos)
	require.True(t, errors.As(reported[1], &uerr))
	assert.Equal(t, `"str"`, uerr.Symbol)
}

func TestOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	_, err := run(t, "7o")
	assert.True(t, errors.Is(err, ErrNoSink))
	//
	out := &Surface{}
	_, err = run(t, "7op o", WithSink(out))
	require.NoError(t, err)
	assert.Equal(t, "78", out.Text())
	//
	var buf bytes.Buffer
	_, err = run(t, "15o", WithOutput(&buf))
	require.NoError(t, err)
	assert.Equal(t, "15", buf.String())
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	var buf bytes.Buffer
	m, err := run(t, "1>2", WithDumpOutput(&buf))
	require.NoError(t, err)
	m.Dump()
	assert.Equal(t, "1 2\n", buf.String())
}

func TestStepLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m, err := run(t, "(p)99999999999999999999", WithStepLimit(100))
	assert.True(t, errors.Is(err, ErrStepLimit))
	assert.Equal(t, uint64(101), m.Steps())
}

func TestCellLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	_, err := run(t, "1[>1]", WithCellLimit(10))
	assert.True(t, errors.Is(err, slate.ErrExhausted))
}

func TestCancel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m := New(grammar.MustLoad("1[p]"), WithOperators(testOps()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStepAndLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m := New(grammar.MustLoad("pp"), WithOperators(testOps()))
	require.NoError(t, m.Step())
	assert.Equal(t, 1, m.IP())
	assert.Equal(t, "1", m.Cell().String())
	require.NoError(t, m.Step())
	assert.True(t, m.Halted())
	require.NoError(t, m.Step())
	m.Load(grammar.MustLoad("p"))
	assert.False(t, m.Halted())
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, "3", m.Cell().String(), "slate survives loading a new program")
}

func TestControlCannotBeOverridden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	ops := testOps().Define('[', Niladic("bogus", func(m *Machine) { m.SetCell(simplex.One) }))
	m := New(grammar.MustLoad("[p]"), WithOperators(ops))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, "0", m.Cell().String())
}
