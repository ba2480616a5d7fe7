package vm

import (
	"io"
	"os"

	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/slate"
)

// Option configures a machine.
type Option interface{ apply(m *Machine) }

var defaults = []Option{
	withDump{os.Stdout},
	withReporter(reportToStderr),
	withFuel(simplex.Infinity(1)),
	withCellLimit(slate.DefaultCellLimit),
}

func (m *Machine) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(m)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

type withOperators OperatorTable
type withSink struct{ Sink }
type withDump struct{ io.Writer }
type withReporter func(error)
type withFuel simplex.Value
type withCellLimit int
type withStepLimit uint64

// WithOperators sets the instruction set of a machine. Operators for the
// bracket symbols are ignored, as control flow is built into the machine.
func WithOperators(tab OperatorTable) Option { return withOperators(tab) }

// WithSink connects an output sink.
func WithSink(s Sink) Option { return withSink{s} }

// WithOutput connects an io.Writer as output sink.
func WithOutput(w io.Writer) Option { return withSink{WriterSink(w)} }

// WithDumpOutput sets the destination of slate dumps. Default is stdout.
func WithDumpOutput(w io.Writer) Option { return withDump{w} }

// WithReporter sets a handler for non-fatal errors, i.e. unknown operators.
// The default handler prints them to stderr.
func WithReporter(report func(error)) Option { return withReporter(report) }

// WithFuel sets the initial fuel. Default is +Infinity.
func WithFuel(fuel simplex.Value) Option { return withFuel(fuel) }

// WithCellLimit limits the number of cells of each slate. Growing a slate
// beyond the limit halts the machine with slate.ErrExhausted. Default is
// slate.DefaultCellLimit, 0 removes the limit.
func WithCellLimit(limit int) Option { return withCellLimit(limit) }

// WithStepLimit limits the number of instructions a machine may execute.
func WithStepLimit(limit uint64) Option { return withStepLimit(limit) }

func (tab withOperators) apply(m *Machine) {
	for sym, op := range tab {
		m.ops[sym] = op
	}
}

func (s withSink) apply(m *Machine)      { m.out = s.Sink }
func (d withDump) apply(m *Machine)      { m.dump = d.Writer }
func (r withReporter) apply(m *Machine)  { m.report = r }
func (f withFuel) apply(m *Machine)      { m.fuel = simplex.Value(f) }
func (l withCellLimit) apply(m *Machine) { m.cellLimit = int(l) }
func (l withStepLimit) apply(m *Machine) { m.stepLimit = uint64(l) }

func reportToStderr(err error) {
	io.WriteString(os.Stderr, err.Error()+"\n")
}
