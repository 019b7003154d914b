package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse-emoji/core/emoji"
	"github.com/npillmayer/tyse-emoji/core/locate/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIntp(t *testing.T) *Intp {
	intp := NewIntp(testconfig.Conf{})
	require.NoError(t, intp.loadFont("", []float64{12, 24}))
	t.Cleanup(intp.engine.Close)
	return intp
}

func run(t *testing.T, intp *Intp, line string) {
	quit, err := intp.execute(parseCommand(line))
	require.NoError(t, err, line)
	require.False(t, quit)
}

func TestParseCommand(t *testing.T) {
	cmd := parseCommand("register  fire.m 24 20")
	assert.Equal(t, REGISTER, cmd.code)
	assert.Equal(t, []string{"fire.m", "24", "20"}, cmd.args)
	cmd = parseCommand("apply I :heart:  Go")
	assert.Equal(t, APPLY, cmd.code)
	assert.Equal(t, "I :heart:  Go", cmd.rest)
	assert.Equal(t, HELP, parseCommand("frobnicate 1").code)
	assert.Equal(t, QUIT, parseCommand("QUIT").code)
}

func TestRegisterInitApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.emoji")
	defer teardown()
	//
	intp := newTestIntp(t)
	run(t, intp, "register fire 24 20")
	run(t, intp, "register heart.m")
	assert.Len(t, intp.engine.Pending(), 2)
	run(t, intp, "init")
	assert.Equal(t, emoji.Ready, intp.engine.State())
	e, err := intp.engine.Registry().Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "fire", e.Name)
	assert.Equal(t, 20, e.Metrics.Height)
	mono, err := intp.engine.Registry().IsMonochrome(emoji.Codepoint(1))
	require.NoError(t, err)
	assert.True(t, mono)
	for _, f := range intp.fonts.Faces() {
		for _, s := range f.Sizes() {
			assert.Len(t, s.Characters, 2, "size %g lacks emoji glyphs", s.PtSize)
		}
	}
	run(t, intp, "apply :fire:")
	run(t, intp, "list")
	run(t, intp, "get fire")
	_, err = intp.execute(parseCommand("get ice"))
	assert.Error(t, err)
	quit, _ := intp.execute(parseCommand("quit"))
	assert.True(t, quit)
}

func TestLoadAssets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.emoji")
	defer teardown()
	//
	intp := newTestIntp(t)
	_, err := intp.execute(parseCommand("load " + filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
	run(t, intp, "load "+t.TempDir())
	require.NotNil(t, intp.atlas)
	assert.Equal(t, 0, intp.atlas.Len())
}

func TestHeaderFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.emoji")
	defer teardown()
	//
	intp := newTestIntp(t)
	run(t, intp, "init")
	run(t, intp, "register thumbs-up")
	fname := filepath.Join(t.TempDir(), "emoji.h")
	run(t, intp, "header "+fname)
	h, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(h), "#define EMOJI_THUMBS_UP 0xE000"))
}

func TestCompleter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.emoji")
	defer teardown()
	//
	intp := newTestIntp(t)
	run(t, intp, "init")
	run(t, intp, "register fire")
	run(t, intp, "register fireworks")
	c := completer{intp}
	line := []rune("apply :fi")
	suffixes, n := c.Do(line, len(line))
	assert.Equal(t, 3, n)
	assert.Equal(t, [][]rune{[]rune("re:"), []rune("reworks:")}, suffixes)
	line = []rune("ini")
	suffixes, _ = c.Do(line, len(line))
	assert.Equal(t, [][]rune{[]rune("t ")}, suffixes)
}

func TestParseSizes(t *testing.T) {
	assert.Equal(t, []float64{12, 24.5}, parseSizes("12, 24.5,,x"))
	assert.Nil(t, parseSizes(""))
}

func TestRegisterUsesMonochromeAsset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.emoji")
	defer teardown()
	//
	intp := newTestIntp(t)
	run(t, intp, "init")
	intp.atlas = assets.NewAtlas() // loaded after init, textures are looked up on register
	intp.atlas.Put("emoji/fire.m", assets.NewTexture("emoji/fire.m", 24, 20))
	intp.atlas.Put("emoji/heart", assets.NewTexture("emoji/heart", 30, 28))
	run(t, intp, "register fire.m")
	run(t, intp, "register heart.m")
	r := intp.engine.Registry()
	id, err := r.Get("fire")
	require.NoError(t, err)
	e, _ := r.Entry(id)
	assert.Equal(t, 24, e.Metrics.Width, "fire.m must use the asset stored with suffix")
	assert.True(t, e.Monochrome)
	id, err = r.Get("heart")
	require.NoError(t, err)
	e, _ = r.Entry(id)
	assert.Equal(t, 30, e.Metrics.Width, "heart.m must fall back to the asset without suffix")
	assert.True(t, e.Monochrome)
}

func TestTraceConfigCoversAllPackages(t *testing.T) {
	conf := newConf("Debug")
	for _, key := range []string{"tyse.emoji", "tyse.fonts", "tyse.resources", "tyse.html"} {
		assert.Equal(t, "Debug", conf.GetString("trace."+key), "missing trace level for %s", key)
	}
	assert.Equal(t, "go", conf.GetString("tracing.adapter"))
}
