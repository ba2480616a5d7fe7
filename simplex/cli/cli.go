package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/codepage"
	"github.com/npillmayer/simplex/corelang"
	"github.com/npillmayer/simplex/grammar"
	"github.com/npillmayer/simplex/slate"
	"github.com/npillmayer/simplex/vm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/transform"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "simplex [file]",
	Short: "An interpreter for the Simplex grid language",
	Long: `Welcome to Simplex V0.1

Simplex runs programs which move a cursor over an unbounded grid of
decimal numbers.

Simplex is able to execute a program given as a file or on the command
line, or run in interactive mode. If run in interactive mode, it will prompt
for program lines in a terminal REPL, keeping the state of the slates
between lines.

`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimplexCmd,
}

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Output the code page bytes of UTF-8 program text",
	Args:  cobra.MaximumNArgs(1),
	Run:   runEncodeCmd,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Output UTF-8 program text for code page bytes",
	Args:  cobra.MaximumNArgs(1),
	Run:   runDecodeCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)
	if rootCmd.Execute() != nil {
		simplex.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Force run in interactive mode")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.StringP("code", "c", "", "Program text to run")
	flags.BoolP("encoded", "e", false, "Program file is encoded in the Simplex code page")
	flags.String("fuel", "", "Initial fuel (default infinite)")
	flags.Int("cell-limit", slate.DefaultCellLimit, "Maximum number of cells per slate (0 for unlimited)")
	flags.Int64("step-limit", 0, "Maximum number of instructions to execute (0 for unlimited)")
}

var errNoProgram = errors.New("expected a file name or program input. Try `-h` for help")

func runSimplexCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("simplex interpreter called")
	source, err := readProgram(args, encodedInput())
	if err != nil && !errors.Is(err, errNoProgram) {
		fail(err)
	}
	interactive := simplex.Configuration != nil && simplex.Configuration.Bool("interactive")
	if errors.Is(err, errNoProgram) {
		if !interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
			fail(err)
		}
		interactive = true
	}
	if interactive {
		runREPL(source)
		return
	}
	if err := runProgram(source, os.Stdout, os.Stderr); err != nil {
		fail(err)
	}
}

// runProgram executes a program with the standard instruction set.
func runProgram(source string, stdout, stderr io.Writer) error {
	prog, err := grammar.Load(source)
	if err != nil {
		return err
	}
	opts, err := machineOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		vm.WithOperators(corelang.Standard()),
		vm.WithOutput(stdout),
		vm.WithDumpOutput(stdout),
		vm.WithReporter(func(err error) { fmt.Fprintln(stderr, err) }),
	)
	m := vm.New(prog, opts...)
	if err := m.Run(simplex.SignalContext); err != nil {
		return err
	}
	tracer().P("steps", m.Steps()).Infof("program finished")
	return nil
}

func runEncodeCmd(cmd *cobra.Command, args []string) {
	source, err := readProgram(args, false)
	if err != nil {
		fail(err)
	}
	data, err := codepage.Encode(source)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(data)
}

func runDecodeCmd(cmd *cobra.Command, args []string) {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fail(err)
		}
		defer f.Close()
		in = f
	}
	r := transform.NewReader(in, codepage.Encoding.NewDecoder())
	if _, err := io.Copy(os.Stdout, r); err != nil {
		fail(err)
	}
}

func encodedInput() bool {
	return simplex.Configuration != nil && simplex.Configuration.Bool("encoded")
}

// readProgram gets the program text from a file, if given, or from the
// code flag otherwise.
func readProgram(args []string, encoded bool) (string, error) {
	if len(args) == 0 {
		if simplex.Configuration != nil {
			if code := simplex.Configuration.String("code"); code != "" {
				return code, nil
			}
		}
		return "", errNoProgram
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", err
	}
	defer f.Close()
	var in io.Reader = f
	if encoded {
		in = transform.NewReader(f, codepage.Encoding.NewDecoder())
	}
	var b strings.Builder
	if _, err := io.Copy(&b, in); err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	tracer().P("file", args[0]).Debugf("read %d bytes of program text", b.Len())
	return b.String(), nil
}

func fail(err error) {
	tracer().Errorf("%v", err)
	fmt.Fprintf(os.Stderr, "simplex: %v\n", err)
	simplex.Exit(1)
}
