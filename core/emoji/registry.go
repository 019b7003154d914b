package emoji

import (
	"sort"

	"github.com/derekparker/trie"
	"golang.org/x/text/unicode/norm"
)

// Texture is an image an emoji glyph is taken from. Only its dimensions are
// of interest to a registry.
type Texture interface {
	Width() int
	Height() int
}

// GlyphMetrics are the metrics of an emoji glyph, in pixels.
type GlyphMetrics struct {
	Width, Height int
	XAdvance      int
}

// MetricsOf derives glyph metrics from a texture. Emoji glyphs advance by
// their full width. A nil texture has zero metrics.
func MetricsOf(tex Texture) GlyphMetrics {
	if tex == nil {
		return GlyphMetrics{}
	}
	return GlyphMetrics{
		Width:    tex.Width(),
		Height:   tex.Height(),
		XAdvance: tex.Width(),
	}
}

// Entry is the registry's view of a single emoji.
type Entry struct {
	Name       string
	ID         int
	Monochrome bool
	Metrics    GlyphMetrics
	Texture    Texture
}

// Codepoint returns the code-point assigned to e.
func (e Entry) Codepoint() rune {
	return Codepoint(e.ID)
}

type glyph struct {
	metrics GlyphMetrics
	texture Texture
}

// Registry maps emoji names to IDs.
//
// The zero value is not usable; create registries with NewRegistry.
type Registry struct {
	names  []string       // in order of registration, index = ID
	ids    map[string]int // name -> ID
	folded map[string]int // NFC form of name -> first ID with this form
	mono   []bool         // indexed by ID
	glyphs []glyph        // indexed by ID
	lookup *trie.Trie     // for name completion
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset removes all entries from r.
func (r *Registry) Reset() {
	r.names = make([]string, 0, 64)
	r.ids = make(map[string]int)
	r.folded = make(map[string]int)
	r.mono = make([]bool, 0, 64)
	r.glyphs = make([]glyph, 0, 64)
	r.lookup = trie.New()
}

// Register assigns an ID to an emoji name, or updates the entry if the name
// is already known. A trailing MonochromeSuffix is stripped from the name and
// sets the monochrome flag of the entry; without the suffix the flag is
// cleared. The texture and its metrics replace those of a previous
// registration, the ID never changes.
//
// If all code-points of the reserved range are in use, Register fails with
// ErrCapacityExceeded and r stays unchanged. Names are checked with
// ParseName.
func (r *Registry) Register(name string, tex Texture) (int, error) {
	base, monochrome, err := ParseName(name)
	if err != nil {
		return NoID, err
	}
	g := glyph{metrics: MetricsOf(tex), texture: tex}
	if id, ok := r.ids[base]; ok {
		r.mono[id] = monochrome
		r.glyphs[id] = g
		tracer().Debugf("emoji %s (%U) updated, monochrome=%v", base, Codepoint(id), monochrome)
		return id, nil
	}
	if len(r.names) >= Capacity {
		return NoID, errCapacity(base)
	}
	id := len(r.names)
	r.names = append(r.names, base)
	r.ids[base] = id
	r.mono = append(r.mono, monochrome)
	r.glyphs = append(r.glyphs, g)
	if _, ok := r.folded[norm.NFC.String(base)]; !ok {
		r.folded[norm.NFC.String(base)] = id
	}
	r.lookup.Add(base, id)
	tracer().Debugf("emoji %s registered as %U, monochrome=%v", base, Codepoint(id), monochrome)
	return id, nil
}

// Get returns the ID for an emoji name, or ErrNotFound.
func (r *Registry) Get(name string) (int, error) {
	if id, ok := r.TryGet(name); ok {
		return id, nil
	}
	return NoID, errNotFound(name)
}

// TryGet returns the ID for an emoji name and true, or false if the name is
// not registered.
//
// Names are matched exactly. If there is no exact match, TryGet falls back to
// comparing NFC forms, so that a composed name finds an emoji registered with
// a decomposed name (as file systems may report them) and vice versa.
func (r *Registry) TryGet(name string) (int, bool) {
	if id, ok := r.ids[name]; ok {
		return id, true
	}
	if id, ok := r.folded[norm.NFC.String(name)]; ok {
		return id, true
	}
	return NoID, false
}

// Rune returns the code-point for an emoji name and true, or false if the name is
// not registered.
func (r *Registry) Rune(name string) (rune, bool) {
	id, ok := r.TryGet(name)
	if !ok {
		return 0, false
	}
	return Codepoint(id), true
}

// IsMonochrome returns the monochrome flag for an emoji code-point. It fails
// with ErrIndexOutOfRange if no emoji has been assigned to c.
func (r *Registry) IsMonochrome(c rune) (bool, error) {
	id := ID(c)
	if id < 0 || id >= len(r.names) {
		return false, errOutOfRange(c, len(r.names))
	}
	return r.mono[id], nil
}

// Last returns the code-point of the most recently added emoji. For an
// empty registry, Last returns Base-1.
func (r *Registry) Last() rune {
	return Codepoint(len(r.names) - 1)
}

// Len returns the number of registered emojis.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the registered emoji names, in order of their IDs.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Entry returns the entry for an ID, or ErrIndexOutOfRange.
func (r *Registry) Entry(id int) (Entry, error) {
	if id < 0 || id >= len(r.names) {
		return Entry{}, errOutOfRange(Codepoint(id), len(r.names))
	}
	return Entry{
		Name:       r.names[id],
		ID:         id,
		Monochrome: r.mono[id],
		Metrics:    r.glyphs[id].metrics,
		Texture:    r.glyphs[id].texture,
	}, nil
}

// Complete returns all registered names starting with prefix, in order of
// their IDs.
func (r *Registry) Complete(prefix string) []string {
	if r.Len() == 0 {
		return nil
	}
	if prefix == "" {
		return r.Names()
	}
	names := r.lookup.PrefixSearch(prefix)
	sort.Slice(names, func(i, j int) bool {
		return r.ids[names[i]] < r.ids[names[j]]
	})
	return names
}
