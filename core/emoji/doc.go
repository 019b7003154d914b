/*
Package emoji assigns code-points from the Unicode Private Use Area to
named glyph images and substitutes ':name:' tokens in text.

Every image registered under a name receives an ID, starting with 0 and
counting upward in order of registration. The ID selects the code-point

    Base + ID

which is then made renderable by writing a glyph record into every size of
every face of a pixelfont.Collection. IDs are stable: registering an image
for a name already known replaces the image, but keeps the ID.

A name ending in ".m" requests the monochrome variant of the emoji named
without this suffix. Registering "fire.m" and "fire" addresses the same
code-point; the last registration decides about the monochrome flag.

Text is rewritten with Apply:

    engine.Apply("I :heart: Go")

replaces every token ':heart:' with the code-point of 'heart'. Tokens for
unknown names are left untouched, and there is no way to escape a token of
a registered name.

An Engine owns a Registry, a queue of registrations submitted before the
engine has been initialized, and the connection to the font collection.
Engines are not safe for concurrent mutation; clients are expected to
drive them from a single goroutine. Apply may be called concurrently with
other calls to Apply.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emoji

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tyse.emoji'
func tracer() tracing.Trace {
	return tracing.Select("tyse.emoji")
}
