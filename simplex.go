/*
Package simplex is an interpreter for Simplex, a small grid-based esoteric
programming language.

A Simplex program is a flat sequence of one-character instructions. The
instructions move a cursor over an unbounded two-dimensional grid (a "slate")
of arbitrary precision decimals, read operands from cells next to the cursor
and write results back into the cursor cell.

The root package holds the cell value type and a couple of application-wide
globals. Tokenizing and bracket resolution live in package grammar, the
slates in package slate, the machine in package vm and the instruction set in
package corelang.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package simplex

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
