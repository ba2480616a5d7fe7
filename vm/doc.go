/*
Package vm implements the Simplex machine: cursor and motion state, the
fetch-decode-execute loop and structured control flow.

The machine does not know any arithmetic by itself. Instructions are looked
up in an operator table, which clients supply with WithOperators; package
corelang provides the standard instruction set. Only the bracket constructs
for loops, conditionals and counted repeats are built into the machine, as
they need the jump table of the program.

Operators come in three variants. Niladic operators only have side effects.
Monadic operators read one operand, dyadic operators read two. Operands are
taken from cells next to the cursor, selected by the two motion vectors of
the machine, and results are written back into the cursor cell.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'simplex.vm'
func tracer() tracing.Trace {
	return tracing.Select("simplex.vm")
}
