/*
Package grammar implements tokenizing and bracket resolution for Simplex
programs.

A Simplex program is a flat stream of tokens: numbers (runs of decimal
digits), string literals in double quotes, and single-character operators.
The closing delimiter of a counted repeat carries its repeat count, i.e.
`)12` is a single token.

Structure is restricted to three bracket families, loops `[ ]`,
conditionals `{ }` and counted repeats `( )N`. Load resolves them into a
jump table which pairs every delimiter with its partner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'simplex.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("simplex.grammar")
}
