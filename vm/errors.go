package vm

import (
	"errors"
	"fmt"
)

// ErrNoSink is raised when an output operator fires and no output sink is
// connected to the machine.
var ErrNoSink = errors.New("no output connected")

// ErrStepLimit is raised when a machine executes more instructions than
// allowed by WithStepLimit.
var ErrStepLimit = errors.New("step limit exceeded")

// UnknownOperatorError is reported for instructions without an operator.
// It is not fatal: the machine continues with the next instruction.
type UnknownOperatorError struct {
	Symbol string // raw token text
	Pos    int    // instruction pointer
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("undefined operator %s at #%d", e.Symbol, e.Pos)
}

// haltError carries a fatal condition out of the fetch-execute loop.
type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

func errUnpaired(ip int) error {
	return fmt.Errorf("bracket at #%d without partner", ip)
}
