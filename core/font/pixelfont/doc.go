/*
Package pixelfont holds bitmap font faces and their size variants.

A Collection is a set of faces. Every face carries one or more sizes, and
every size owns a character table, mapping code-points to glyph records
(position and metrics within a texture page). Clients may add glyphs to
any size at any time; the package does not interpret texture data.

Faces are taken either from AngelCode BMFont text descriptors or from
OpenType fonts, where only the line metrics are derived from the font
file. The character tables of OpenType-derived sizes start out empty.

Code interested in every size becoming known to a collection may call
Collection.Listen. Listeners are notified for sizes of newly added faces
as well as for sizes added to faces already in the collection.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pixelfont

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
