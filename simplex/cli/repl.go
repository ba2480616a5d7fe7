package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/simplex/corelang"
	"github.com/npillmayer/simplex/grammar"
	"github.com/npillmayer/simplex/simplex/ui/termui"
	"github.com/npillmayer/simplex/vm"
)

// runREPL starts an interactive session. If source is not empty, it is
// executed before the first prompt.
func runREPL(source string) {
	tracing.Infof("simplex REPL called")
	intp := &simplexIntpr{}
	intp.BaseREPL = termui.NewBaseREPL("simplex", "0.1")
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
Every other line is run as a Simplex program. The slates, the cursor, the
motions and the fuel are kept from one line to the next.

`)
	}
	if err := intp.reset(); err != nil {
		fail(err)
	}
	intp.addSubcmdStatements()
	if strings.TrimSpace(source) != "" {
		intp.InterpretCommand(source)
	}
	intp.Prompt(true)
}

type simplexIntpr struct {
	*termui.BaseREPL
	machine *vm.Machine
	out     *lineWriter
}

// reset replaces the session's machine by a fresh one.
func (intp *simplexIntpr) reset() error {
	opts, err := machineOptions()
	if err != nil {
		return err
	}
	stdout, stderr := intp.Outputs()
	intp.out = &lineWriter{w: stdout}
	opts = append(opts,
		vm.WithOperators(corelang.Standard()),
		vm.WithOutput(intp.out),
		vm.WithDumpOutput(intp.out),
		vm.WithReporter(func(err error) { fmt.Fprintf(stderr, "> %v\n", err) }),
	)
	intp.machine = vm.New(nil, opts...)
	return nil
}

// InterpretCommand runs a line of program text on the session's machine.
// Interrupting a run returns to the prompt.
func (intp *simplexIntpr) InterpretCommand(line string) {
	_, stderr := intp.Outputs()
	prog, err := grammar.Load(strings.Trim(line, "\x00"))
	if err != nil {
		fmt.Fprintf(stderr, "> %v\n", err)
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	intp.machine.Load(prog)
	err = intp.machine.Run(ctx)
	intp.out.EndLine()
	if err != nil {
		fmt.Fprintf(stderr, "> %v\n", err)
	}
}

func (intp *simplexIntpr) addSubcmdStatements() {
	intp.AddCommand("slate", func(args []string) (interface{}, error) {
		if len(args) > 1 {
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, fmt.Errorf("slate index expected: %w", err)
			}
			g, ok := intp.machine.Slates().At(i)
			if !ok {
				return nil, fmt.Errorf("no slate %d", i)
			}
			return slateTable(intp.machine, i, g), nil
		}
		return slateTable(intp.machine, intp.machine.SlateIndex(), intp.machine.Slate()), nil
	})
	intp.AddCommand("status", func(args []string) (interface{}, error) {
		return machineStatus(intp.machine), nil
	})
	intp.AddCommand("reset", func(args []string) (interface{}, error) {
		if err := intp.reset(); err != nil {
			return nil, err
		}
		return "machine reset", nil
	})
}

// lineWriter remembers if the text written to it ends in the middle of a
// line.
type lineWriter struct {
	w    io.Writer
	open bool
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		lw.open = p[len(p)-1] != '\n'
	}
	return lw.w.Write(p)
}

// EndLine terminates an open line.
func (lw *lineWriter) EndLine() {
	if lw.open {
		lw.Write([]byte{'\n'})
	}
}
