/*
Package assets locates texture assets for an application.

Textures are collected into an Atlas, an ordered map from asset name to
texture. Asset names are slash-separated paths relative to the atlas root,
without file extension:

    <root>/emoji/fire.m.png   -->   emoji/fire.m

Only image headers are read, to determine the dimensions of a texture.
PNG, JPEG, BMP and WebP images are recognized.

As loading a large asset tree may be a time-consuming task, ResolveAtlas
works in an async/await fashion by returning a promise. The call to the
promise-function will then block until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package assets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'tyse.resources'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.resources")
}
