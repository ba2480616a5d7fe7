package grammar

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// ErrStructure flags unbalanced or improperly nested brackets. Errors
// returned by Resolve wrap it.
var ErrStructure = errors.New("malformed program structure")

// StructureError reports a bracket mismatch at a token position.
type StructureError struct {
	Pos int    // token index
	Raw string // offending token
	Msg string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("token #%d %q: %s", e.Pos, e.Raw, e.Msg)
}

// Unwrap makes StructureError match ErrStructure.
func (e *StructureError) Unwrap() error {
	return ErrStructure
}

// Program is a token sequence augmented by a jump table, pairing every
// bracket token with its partner.
type Program struct {
	Tokens []Token
	jumps  []int // partner index per token, -1 for non-brackets
}

// Len returns the number of tokens of a program.
func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Tokens)
}

// Partner returns the index of the bracket paired with the bracket at
// position i.
func (p *Program) Partner(i int) (int, bool) {
	if i < 0 || i >= len(p.jumps) || p.jumps[i] < 0 {
		return -1, false
	}
	return p.jumps[i], true
}

// Load tokenizes source text and resolves its brackets.
func Load(source string) (*Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Resolve(tokens)
}

// MustLoad is like Load, but panics on malformed programs.
func MustLoad(source string) *Program {
	prog, err := Load(source)
	if err != nil {
		panic(err)
	}
	return prog
}

// Family is a bracket family.
type Family int8

// Bracket families
const (
	NoBracket Family = iota
	Loop
	Conditional
	Repeat
)

func (f Family) String() string {
	switch f {
	case Loop:
		return "loop"
	case Conditional:
		return "conditional"
	case Repeat:
		return "repeat"
	}
	return "none"
}

// Bracket classifies a token. Closing repeat tokens are recognized by their
// leading delimiter only, ignoring the count.
func (t Token) Bracket() (fam Family, opening bool) {
	if t.Kind != Operator {
		return NoBracket, false
	}
	switch t.Raw {
	case "[":
		return Loop, true
	case "]":
		return Loop, false
	case "{":
		return Conditional, true
	case "}":
		return Conditional, false
	case "(":
		return Repeat, true
	}
	if t.Raw[0] == RepeatMarker {
		return Repeat, false
	}
	return NoBracket, false
}

// Resolve pairs brackets in a single pass, using one stack shared by all
// bracket families. Brackets of different families may nest, but must not
// interleave.
func Resolve(tokens []Token) (*Program, error) {
	prog := &Program{
		Tokens: tokens,
		jumps:  make([]int, len(tokens)),
	}
	open := linkedliststack.New()
	for i, tok := range tokens {
		prog.jumps[i] = -1
		fam, opening := tok.Bracket()
		if fam == NoBracket {
			continue
		}
		if opening {
			open.Push(i)
			continue
		}
		top, ok := open.Pop()
		if !ok {
			tracer().P("token", i).Errorf("unmatched closing bracket %q", tok.Raw)
			return nil, &StructureError{Pos: i, Raw: tok.Raw, Msg: "unmatched closing bracket"}
		}
		j := top.(int)
		if f, _ := tokens[j].Bracket(); f != fam {
			tracer().P("token", i).Errorf("%s closed by %s bracket", f, fam)
			return nil, &StructureError{Pos: i, Raw: tok.Raw,
				Msg: fmt.Sprintf("closes %s bracket opened at #%d", f, j)}
		}
		prog.jumps[i], prog.jumps[j] = j, i
	}
	if !open.Empty() {
		top, _ := open.Pop()
		j := top.(int)
		return nil, &StructureError{Pos: j, Raw: tokens[j].Raw, Msg: "bracket never closed"}
	}
	tracer().Debugf("resolved brackets of %d tokens", len(tokens))
	return prog, nil
}
