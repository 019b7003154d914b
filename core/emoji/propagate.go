package emoji

import "github.com/npillmayer/tyse-emoji/core/font/pixelfont"

// Propagator makes the code-points of a registry renderable by writing
// glyph records into a font collection.
//
// Every size known to the collection has a glyph for every registered ID:
// Propagate writes a single ID into all known sizes, and each size becoming
// known to the collection later on receives glyphs for all registered IDs.
type Propagator struct {
	registry *Registry
	fonts    *pixelfont.Collection
	cancel   func()
}

// NewPropagator connects a registry to a font collection. fonts may be nil,
// in which case propagation does nothing.
func NewPropagator(r *Registry, fonts *pixelfont.Collection) *Propagator {
	p := &Propagator{registry: r, fonts: fonts}
	if fonts != nil {
		p.cancel = fonts.Listen(func(face *pixelfont.Face, size *pixelfont.Size) {
			tracer().Debugf("new size %s@%.2f, replaying %d emojis", face.Name, size.PtSize, r.Len())
			p.Replay(size)
		})
	}
	return p
}

// Propagate writes the glyph for an ID into every size of every face.
func (p *Propagator) Propagate(id int) error {
	e, err := p.registry.Entry(id)
	if err != nil {
		return err
	}
	if p.fonts == nil {
		return nil
	}
	p.fonts.EachSize(func(_ *pixelfont.Face, size *pixelfont.Size) {
		size.SetGlyph(glyphRecord(e))
	})
	return nil
}

// Replay writes glyphs for all registered IDs into size.
func (p *Propagator) Replay(size *pixelfont.Size) {
	for id := 0; id < p.registry.Len(); id++ {
		e, err := p.registry.Entry(id)
		if err != nil {
			tracer().Errorf("cannot replay emoji: %v", err)
			continue
		}
		size.SetGlyph(glyphRecord(e))
	}
}

// ReplayAll writes glyphs for all registered IDs into every known size.
func (p *Propagator) ReplayAll() {
	if p.fonts == nil {
		return
	}
	p.fonts.EachSize(func(_ *pixelfont.Face, size *pixelfont.Size) {
		p.Replay(size)
	})
}

// Close detaches p from the font collection.
func (p *Propagator) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// glyphRecord creates a fresh record per size; sizes never share records.
func glyphRecord(e Entry) *pixelfont.Character {
	return &pixelfont.Character{
		Rune:     e.Codepoint(),
		Width:    e.Metrics.Width,
		Height:   e.Metrics.Height,
		XAdvance: e.Metrics.XAdvance,
		Texture:  e.Texture,
	}
}
