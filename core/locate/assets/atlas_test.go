package assets

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse-emoji/core"
	"github.com/npillmayer/tyse-emoji/core/emoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOfSize(t *testing.T, w, h int) []byte {
	var b bytes.Buffer
	err := png.Encode(&b, image.NewRGBA(image.Rect(0, 0, w, h)))
	require.NoError(t, err)
	return b.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"pack/emoji/fire.png":    {Data: pngOfSize(t, 24, 20)},
		"pack/emoji/heart.m.png": {Data: pngOfSize(t, 16, 16)},
		"pack/emoji/README.txt":  {Data: []byte("not an image")},
		"pack/gui/logo.png":      {Data: pngOfSize(t, 100, 40)},
		"pack/.hidden.png":       {Data: pngOfSize(t, 1, 1)},
	}
}

func TestLoadAtlas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.resources")
	defer teardown()
	//
	atlas, err := LoadAtlas(testFS(t), "pack")
	require.NoError(t, err)
	assert.Equal(t, []string{"emoji/fire", "emoji/heart.m", "gui/logo"}, atlas.Names())
	fire, ok := atlas.Get("emoji/fire")
	require.True(t, ok)
	assert.Equal(t, 24, fire.Width())
	assert.Equal(t, 20, fire.Height())
	assert.Equal(t, "png", fire.Format)
	assert.Equal(t, "pack/emoji/fire.png", fire.Path)
}

func TestLoadAtlasMissingRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.resources")
	defer teardown()
	//
	_, err := LoadAtlas(testFS(t), "nowhere")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestAtlasKeepsOrderOnReplace(t *testing.T) {
	atlas := NewAtlas()
	atlas.Put("b", NewTexture("b", 1, 1))
	atlas.Put("a", NewTexture("a", 1, 1))
	atlas.Put("b", NewTexture("b", 2, 2))
	assert.Equal(t, []string{"b", "a"}, atlas.Names())
	b, _ := atlas.Get("b")
	assert.Equal(t, 2, b.Width())
	var visited []string
	atlas.EachTexture(func(name string, _ emoji.Texture) bool {
		visited = append(visited, name)
		return false
	})
	assert.Equal(t, []string{"b"}, visited, "iteration must stop when fn returns false")
}

func TestResolveAtlas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.resources")
	defer teardown()
	//
	promise := ResolveAtlas(testFS(t), "pack")
	atlas, err := promise.AtlasContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, atlas.Len())
	again, err := promise.Atlas()
	require.NoError(t, err)
	assert.Same(t, atlas, again)
}

func TestAtlasFeedsEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.resources")
	defer teardown()
	//
	atlas, err := LoadAtlas(testFS(t), "pack")
	require.NoError(t, err)
	engine := emoji.NewEngine(atlas, nil)
	defer engine.Close()
	require.NoError(t, engine.Initialize())
	reg := engine.Registry()
	assert.Equal(t, []string{"fire", "heart"}, reg.Names())
	id, err := reg.Get("heart")
	require.NoError(t, err)
	mono, err := reg.IsMonochrome(emoji.Codepoint(id))
	require.NoError(t, err)
	assert.True(t, mono)
	e, _ := reg.Entry(0)
	assert.Equal(t, emoji.GlyphMetrics{Width: 24, Height: 20, XAdvance: 24}, e.Metrics)
}
