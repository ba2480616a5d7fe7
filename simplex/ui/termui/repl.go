package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/simplex"
)

var welcomeMessage = "Welcome to %s [V%s]"
var stdprompt = prtxt.FgGreen.Sprint("%s> ")
var editmode string = "emacs"

// BaseREPL reads lines from a terminal and hands them to an interpreter.
// Lines starting with a registered command name are handled by the REPL.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	Formatter   Formatter              // formats results of commands
	readline    *readline.Instance
	completer   *readline.PrefixCompleter
	commands    map[string]Command
	toolname    string
	version     string
}

// Command is an administrative REPL command, added by an interpreter.
// It receives the words of the input line, including the command itself,
// and returns an item to be displayed by the REPL's formatter, or nil.
type Command func(args []string) (interface{}, error)

// NewBaseREPL creates a REPL for a tool. The prompt is the tool name.
func NewBaseREPL(toolname, version string) *BaseREPL {
	repl := &BaseREPL{
		Formatter: DefaultFormatter{},
		completer: newCompleter(),
		commands:  make(map[string]Command),
		toolname:  toolname,
		version:   version,
	}
	repl.readline = newReadline(toolname, repl.completer)
	return repl
}

// REPLCommandInterpreter receives every line which is not a REPL command.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// AddCommand registers an administrative command. Input lines starting with
// name will be handled by cmd instead of the interpreter.
func (repl *BaseREPL) AddCommand(name string, cmd Command) {
	repl.commands[name] = cmd
	children := append(repl.completer.GetChildren(), readline.PcItem(name))
	repl.completer.SetChildren(children)
}

func newReadline(toolname string, completer readline.AutoCompleter) *readline.Instance {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	prompt := fmt.Sprintf(stdprompt, toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        completer,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// displayCommands lists the built-in and registered commands.
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default],\n")
	names := make([]string, 0, len(repl.commands))
	for name := range repl.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		io.WriteString(out, fmt.Sprintf("  %-18s : interpreter command\n", name))
	}
}

// newCompleter knows the built-in commands. Registered ones are appended.
func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt reads lines until "bye", EOF or an interrupt on an empty line.
// With exitOnBye set, the application terminates afterwards.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	io.WriteString(repl.readline.Stderr(),
		fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.readline.Stderr().Write([]byte{'\n'})
	}
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
	if exitOnBye {
		simplex.Exit(0)
	}
}

// executeCommand dispatches a line. cmd is its first word, args all of its
// words. It returns true if the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch {
	case cmd == "":
	case cmd == "help":
		repl.displayCommands(repl.readline.Stderr())
		if repl.Helper != nil {
			repl.Helper(repl.readline.Stderr())
		}
	case cmd == "bye":
		io.WriteString(repl.readline.Stderr(), "> goodbye\n")
		return true
	case cmd == "mode":
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf("> current input mode: %s\n", editmode))
	case cmd == "setprompt":
		var prmpt string
		if len(line) <= 10 {
			prmpt = fmt.Sprintf(stdprompt, repl.toolname)
		} else {
			prmpt = line[10:] + " "
		}
		repl.readline.SetPrompt(prmpt)
	case repl.commands[cmd] != nil:
		repl.runCommand(repl.commands[cmd], args)
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

func (repl *BaseREPL) runCommand(cmd Command, args []string) {
	item, err := cmd(args)
	if err != nil {
		io.WriteString(repl.readline.Stderr(), fmt.Sprintf("> %v\n", err))
		return
	}
	if item == nil {
		return
	}
	if _, err := repl.Formatter.Format(item, repl.readline.Stdout()); err != nil {
		trace().Errorf("cannot display result: %v", err)
	}
}

func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	repl.Interpreter.InterpretCommand(line)
}

// filterReplInput blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	return r, r != readline.CharCtrlZ
}
