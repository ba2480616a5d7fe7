/*
Package slate implements the memory of Simplex programs: unbounded
two-dimensional grids of decimal cells, called slates, and a stack of slates
sharing one cursor position.

Slates are addressed by signed coordinates. Physically a slate is a
rectangular arena of cells plus an offset pair mapping logical coordinates to
storage indices. Every access first makes sure the store covers the
coordinate, growing it by rows and columns of zeros as needed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'simplex.slate'.
func tracer() tracing.Trace {
	return tracing.Select("simplex.slate")
}
