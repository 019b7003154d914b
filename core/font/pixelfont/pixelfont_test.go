package pixelfont

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse-emoji/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDescriptor = `info face="Renogare Soft" size=-32 bold=0 italic=0 charset="" unicode=1
common lineHeight=38 base=30 scaleW=256 scaleH=128 pages=1 packed=0
page id=0 file="renogare_0.png"
chars count=3
char id=65   x=0     y=0     width=20    height=24    xoffset=1     yoffset=6     xadvance=21    page=0  chnl=15
char id=86   x=21    y=0     width=19    height=24    xoffset=0     yoffset=6     xadvance=19    page=0  chnl=15
char id=32   x=0     y=0     width=0     height=0     xoffset=0     yoffset=0     xadvance=8     page=0  chnl=15
kernings count=1
kerning first=65  second=86  amount=-2
`

func TestLoadBMFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	face, err := LoadBMFont(strings.NewReader(testDescriptor))
	require.NoError(t, err)
	assert.Equal(t, "Renogare Soft", face.Name)
	sizes := face.Sizes()
	require.Len(t, sizes, 1)
	size := sizes[0]
	assert.Equal(t, 32.0, size.PtSize, "negative BMFont size should be made positive")
	assert.Equal(t, 38, size.LineHeight)
	assert.Equal(t, 30, size.Base)
	require.Len(t, size.Characters, 3)
	a, ok := size.Glyph('A')
	require.True(t, ok)
	assert.Equal(t, 20, a.Width)
	assert.Equal(t, 21, a.XAdvance)
	assert.Equal(t, 6, a.YOffset)
	assert.Equal(t, -2, a.Kerning['V'])
	require.NotNil(t, a.Texture)
	assert.Equal(t, 256, a.Texture.Width())
	assert.Equal(t, "renogare_0.png", a.Texture.(*PageTexture).File)
}

func TestLoadBMFontWithoutInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	_, err := LoadBMFont(strings.NewReader("common lineHeight=38 base=30\n"))
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = LoadBMFont(strings.NewReader(""))
	require.Error(t, err)
}

func TestFallbackFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	face := FallbackFace(12, 24)
	assert.Equal(t, "Go Sans", face.Name)
	require.Len(t, face.Sizes(), 2)
	small, ok := face.Size(12)
	require.True(t, ok)
	large, ok := face.Size(24)
	require.True(t, ok)
	assert.Greater(t, small.LineHeight, 0)
	assert.Greater(t, large.LineHeight, small.LineHeight)
	assert.Empty(t, small.Characters)
}

func TestCollectionNotifiesNewSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	c := NewCollection()
	var seen []string
	cancel := c.Listen(func(f *Face, s *Size) {
		seen = append(seen, f.Name)
	})
	face := NewFace("Dialog")
	face.AddSize(NewSize(10))
	face.AddSize(NewSize(12))
	assert.Empty(t, seen, "face not in collection yet, no notification expected")
	added, ok := c.AddFace(face)
	require.True(t, ok)
	assert.Same(t, face, added)
	assert.Equal(t, []string{"Dialog", "Dialog"}, seen)
	face.AddSize(NewSize(14))
	assert.Len(t, seen, 3, "adding a size to a known face must notify")
	face.AddSize(NewSize(14))
	assert.Len(t, seen, 3, "duplicate size must not notify")
	cancel()
	face.AddSize(NewSize(16))
	assert.Len(t, seen, 3, "cancelled listener must not be called")
}

func TestCollectionKeepsFirstFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	c := NewCollection()
	first := NewFace("Gill Sans")
	c.AddFace(first)
	existing, ok := c.AddFace(NewFace("gill sans"))
	assert.False(t, ok)
	assert.Same(t, first, existing)
	f, ok := c.Face("GILL SANS")
	require.True(t, ok)
	assert.Same(t, first, f)
	assert.Len(t, c.Faces(), 1)
}

func TestNormalizeFacename(t *testing.T) {
	assert.Equal(t, "cambria_math", NormalizeFacename(" Cambria Math.ttf "))
	assert.Equal(t, "renogare", NormalizeFacename("Renogare"))
}
