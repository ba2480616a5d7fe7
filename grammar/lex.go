package grammar

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokKind is the category of a token.
type TokKind int

// Token categories
const (
	Number TokKind = iota + 1
	Operator
	String
)

func (k TokKind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case String:
		return "String"
	}
	return fmt.Sprintf("<illegal token kind: %d>", int(k))
}

// RepeatMarker is the closing delimiter of a counted repeat. It may be
// followed by the repeat count.
const RepeatMarker = ')'

// Token is a lexeme of a Simplex program. Tokens are immutable.
type Token struct {
	Kind TokKind
	Raw  string // literal text of the token
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Raw)
}

// Symbol returns the first character of a token. For operators this is the
// instruction symbol.
func (t Token) Symbol() rune {
	r, _ := utf8.DecodeRuneInString(t.Raw)
	return r
}

// RepeatCount returns the digits of a counted-repeat closing token, or "1"
// if there are none.
func (t Token) RepeatCount() string {
	if t.Kind == Operator && len(t.Raw) > 1 && t.Raw[0] == RepeatMarker {
		return t.Raw[1:]
	}
	return "1"
}

// --- Scanner ---------------------------------------------------------------

// whitespace separates tokens. Other control characters are operators.
const whitespace = " \t\n\r"

var lexer *lex.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// Lexer returns the lexmachine lexer for Simplex, compiling it on first use.
//
// Rules, in order of priority for equally long matches:
//
//   "…"        string literal, greedy up to the last quote on the line
//   "          unterminated string literal
//   )?[0-9]+   number, or closing repeat with count
//   whitespace space, tab, CR and LF are skipped
//   [!-~]      any other printable ASCII character
//
// Everything else (glyphs from the code page) is not covered by the DFA and
// is handled by Tokenize.
func Lexer() (*lex.Lexer, error) {
	initOnce.Do(func() {
		l := lex.NewLexer()
		l.Add([]byte("\"[^\n]*\""), makeToken(String))
		l.Add([]byte("\""), makeToken(String))
		l.Add([]byte(`\)?[0-9]+`), numberToken)
		l.Add([]byte("( |\t|\n|\r)+"), skip) // same set as whitespace
		l.Add([]byte(`[!-~]`), makeToken(Operator))
		if lexerErr = l.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile Simplex lexer: %v", lexerErr)
			return
		}
		lexer = l
	})
	return lexer, lexerErr
}

func makeToken(kind TokKind) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

func numberToken(s *lex.Scanner, m *machines.Match) (interface{}, error) {
	if m.Bytes[0] == RepeatMarker {
		return s.Token(int(Operator), string(m.Bytes), m), nil
	}
	return s.Token(int(Number), string(m.Bytes), m), nil
}

func skip(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenize splits source text into tokens. Empty or whitespace-only input
// results in an empty token sequence.
func Tokenize(source string) ([]Token, error) {
	l, err := Lexer()
	if err != nil {
		return nil, err
	}
	if strings.Trim(source, whitespace) == "" {
		return []Token{}, nil
	}
	text := []byte(source)
	scanner, err := l.Scanner(text)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, 0, len(text))
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			// a character outside of ASCII: make it an operator of its own
			r, size := utf8.DecodeRune(text[ui.StartTC:])
			tokens = append(tokens, Token{Kind: Operator, Raw: string(r)})
			scanner.TC = ui.StartTC + size
			continue
		} else if err != nil {
			return nil, err
		}
		t := tok.(*lex.Token)
		tokens = append(tokens, Token{Kind: TokKind(t.Type), Raw: t.Value.(string)})
	}
	tracer().Debugf("Simplex lexer produced %d tokens", len(tokens))
	return tokens, nil
}
