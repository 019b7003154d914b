package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse-emoji/core"
	"github.com/npillmayer/tyse-emoji/core/emoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registry(t *testing.T, names ...string) *emoji.Registry {
	r := emoji.NewRegistry()
	for _, name := range names {
		_, err := r.Register(name, nil)
		require.NoError(t, err)
	}
	return r
}

func TestApplyFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.html")
	defer teardown()
	//
	r := registry(t, "fire", "heart")
	fire := string(emoji.Codepoint(0))
	heart := string(emoji.Codepoint(1))
	out, err := ApplyFragment(`<p title=":fire:">I :heart: <b>:fire:</b></p><code>:fire:</code>`, r, "")
	require.NoError(t, err)
	assert.Equal(t, `<p title=":fire:">I `+heart+` <b>`+fire+`</b></p><code>:fire:</code>`, out)
}

func TestApplyFragmentCustomSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.html")
	defer teardown()
	//
	r := registry(t, "fire")
	fire := string(emoji.Codepoint(0))
	out, err := ApplyFragment(`<span class="raw">:fire:</span><code>:fire:</code>`, r, ".raw")
	require.NoError(t, err)
	assert.Equal(t, `<span class="raw">:fire:</span><code>`+fire+`</code>`, out)
}

func TestApplyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.html")
	defer teardown()
	//
	r := registry(t, "fire")
	var b strings.Builder
	err := ApplyDocument(strings.NewReader(`<html><body><p>:fire: :ice:</p></body></html>`), &b, r, "")
	require.NoError(t, err)
	assert.Contains(t, b.String(), "<p>"+string(emoji.Codepoint(0))+" :ice:</p>")
}

func TestInvalidSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.html")
	defer teardown()
	//
	_, err := ApplyFragment(`<p>x</p>`, registry(t), "p[")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
