/*
Package codepage implements the single byte code page of Simplex.

Simplex programs may be stored either as UTF-8 text or encoded, with every
character occupying one byte. The code page maps the 256 byte values to
printable ASCII, a couple of control characters and a selection of
mathematical and Latin glyphs. Encoding implements the encoding interface
of golang.org/x/text, so it may be used with transform.NewReader and
friends.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codepage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'simplex.codepage'.
func tracer() tracing.Trace {
	return tracing.Select("simplex.codepage")
}
