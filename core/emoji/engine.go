package emoji

import (
	"errors"
	"strings"

	"github.com/npillmayer/tyse-emoji/core/font/pixelfont"
)

// AssetProvider is a source of named textures. EachTexture calls fn for every
// texture in the provider's order, until fn returns false.
type AssetProvider interface {
	EachTexture(fn func(name string, tex Texture) bool)
}

// State is the initialization state of an engine.
type State int

// Engine states. An engine moves from Uninitialized over Initializing to
// Ready exactly once.
const (
	Uninitialized State = iota
	Initializing
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	}
	return "undefined"
}

// Engine is a registry of emojis, connected to an asset provider and a font
// collection.
//
// Registrations submitted before the engine is initialized are queued and
// performed by Initialize, after all emojis of the asset provider.
type Engine struct {
	registry   *Registry
	pending    *pendingQueue
	state      State
	provider   AssetProvider
	propagator *Propagator
	prefix     string
}

// Option configures an engine.
type Option func(*Engine)

// WithAssetPrefix sets the name prefix selecting emoji textures from the
// asset provider. The default is AssetPrefix.
func WithAssetPrefix(prefix string) Option {
	return func(e *Engine) {
		e.prefix = prefix
	}
}

// NewEngine creates an uninitialized engine. provider and fonts may be nil.
// The engine will keep every size of fonts supplied with glyphs for all of
// its emojis, until it is closed.
func NewEngine(provider AssetProvider, fonts *pixelfont.Collection, opts ...Option) *Engine {
	e := &Engine{
		registry: NewRegistry(),
		pending:  newPendingQueue(),
		provider: provider,
		prefix:   AssetPrefix,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.propagator = NewPropagator(e.registry, fonts)
	return e
}

// Register registers an emoji texture under name.
//
// If e is not yet ready, the registration is queued and Register returns
// NoID and no error. Otherwise the registry entry is created or updated, the
// glyph is propagated to every font size, and the emoji's ID is returned.
// See Registry.Register for the handling of name and errors.
func (e *Engine) Register(name string, tex Texture) (int, error) {
	if e.state != Ready {
		tracer().Debugf("engine %s, queueing emoji %s", e.state, name)
		e.pending.push(name, tex)
		return NoID, nil
	}
	return e.register(name, tex)
}

func (e *Engine) register(name string, tex Texture) (int, error) {
	id, err := e.registry.Register(name, tex)
	if err != nil {
		tracer().Errorf("cannot register emoji: %v", err)
		return id, err
	}
	return id, e.propagator.Propagate(id)
}

// Initialize registers all textures of the asset provider carrying the asset
// prefix, with the prefix stripped, followed by all queued registrations in
// order of submission. Afterwards the engine is ready.
//
// Only the first call to Initialize has an effect. Registrations failing
// during initialization do not stop it; their errors are returned joined.
func (e *Engine) Initialize() error {
	if e.state != Uninitialized {
		tracer().Debugf("engine already %s", e.state)
		return nil
	}
	e.state = Initializing
	var errs []error
	if e.provider != nil {
		e.provider.EachTexture(func(name string, tex Texture) bool {
			if strings.HasPrefix(name, e.prefix) {
				if _, err := e.register(strings.TrimPrefix(name, e.prefix), tex); err != nil {
					errs = append(errs, err)
				}
			}
			return true
		})
	}
	discovered := e.registry.Len()
	for {
		p, ok := e.pending.pop()
		if !ok {
			break
		}
		if _, err := e.register(p.Name, p.Texture); err != nil {
			errs = append(errs, err)
		}
	}
	e.state = Ready
	tracer().Infof("emoji engine ready: %d emojis from assets, %d in total",
		discovered, e.registry.Len())
	return errors.Join(errs...)
}

// State returns the initialization state of e.
func (e *Engine) State() State {
	return e.state
}

// Pending returns the registrations waiting for initialization, oldest first.
func (e *Engine) Pending() []PendingRegistration {
	return e.pending.items()
}

// Registry returns the registry of e.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Apply replaces emoji tokens in text, see Registry.Apply.
func (e *Engine) Apply(text string) string {
	return e.registry.Apply(text)
}

// Refresh writes glyphs for all emojis into every known font size.
func (e *Engine) Refresh() {
	e.propagator.ReplayAll()
}

// Reset returns e to its uninitialized state, with an empty registry and an
// empty queue. Glyphs already written to fonts are not removed.
func (e *Engine) Reset() {
	e.registry.Reset()
	e.pending.clear()
	e.state = Uninitialized
}

// Close detaches e from its font collection.
func (e *Engine) Close() {
	e.propagator.Close()
}
