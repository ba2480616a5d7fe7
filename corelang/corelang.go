/*
Package corelang implements the instruction set of Simplex.

Instruction Set

The machine in package vm knows nothing but control flow. Everything else,
i.e. movement, motions, arithmetic, slates and output, is bound to
instruction symbols by the operator table returned from Standard:

	> < ^ v #      move right, left, up, down, forward
	~ `            turn forward direction left, right
	c r l u d      set first motion to center, right, left, up, down
	C R L U D      set second motion
	$              swap motions
	+ - * / %      arithmetic
	:              copy
	k ;            trim slate, reset origin
	x y X Y        get or set cursor coordinates
	' .            previous and next slate
	G              dump slate
	o h            output value or character
	p q _ N        increment, decrement, negate, infinity
	f              set fuel

Dyadic operators read their operands via the first and second motion and
write the result to the cursor cell.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'simplex.core'.
func tracer() tracing.Trace {
	return tracing.Select("simplex.core")
}
