package pixelfont

import (
	"sort"
	"strings"
	"sync"
)

// Texture is an opaque reference to image data a glyph is cut from.
// Only the dimensions are visible to this package.
type Texture interface {
	Width() int
	Height() int
}

// Character is a glyph record within one size of a face.
type Character struct {
	Rune             rune
	X, Y             int // position within the texture
	Width, Height    int
	XOffset, YOffset int
	XAdvance         int
	Page             int
	Texture          Texture
	Kerning          map[rune]int // second rune -> amount
}

// Size is a size variant of a face, owning a character table.
type Size struct {
	PtSize     float64
	LineHeight int
	Base       int
	Characters map[rune]*Character
}

// NewSize creates an empty size variant.
func NewSize(ptsize float64) *Size {
	return &Size{
		PtSize:     ptsize,
		Characters: make(map[rune]*Character),
	}
}

// Glyph returns the character record for r, if present.
func (s *Size) Glyph(r rune) (*Character, bool) {
	c, ok := s.Characters[r]
	return c, ok
}

// SetGlyph inserts or replaces the record for c.Rune.
func (s *Size) SetGlyph(c *Character) {
	if c == nil {
		return
	}
	s.Characters[c.Rune] = c
}

// Face is a named font face with its size variants.
type Face struct {
	Name  string
	sizes []*Size
	owner *Collection
}

// NewFace creates a face without any sizes.
func NewFace(name string) *Face {
	return &Face{Name: name}
}

// AddSize adds a size variant to f. Sizes are unique by point size: if f
// already has a size with the same point size, that size is returned and
// s is dropped.
//
// If f is part of a collection, the collection's listeners will be notified
// about the new size.
func (f *Face) AddSize(s *Size) *Size {
	if s == nil {
		return nil
	}
	if existing, ok := f.Size(s.PtSize); ok {
		tracer().Debugf("face %s already has size %.2f", f.Name, s.PtSize)
		return existing
	}
	if s.Characters == nil {
		s.Characters = make(map[rune]*Character)
	}
	f.sizes = append(f.sizes, s)
	if f.owner != nil {
		f.owner.notify(f, s)
	}
	return s
}

// Size returns the size variant of f with point size ptsize.
func (f *Face) Size(ptsize float64) (*Size, bool) {
	for _, s := range f.sizes {
		if s.PtSize == ptsize {
			return s, true
		}
	}
	return nil, false
}

// Sizes returns the size variants of f, in order of addition.
func (f *Face) Sizes() []*Size {
	sizes := make([]*Size, len(f.sizes))
	copy(sizes, f.sizes)
	return sizes
}

// --- Collection ------------------------------------------------------------

// SizeListener is called for every size becoming known to a collection.
type SizeListener func(face *Face, size *Size)

type listener struct {
	id int
	fn SizeListener
}

// Collection is a set of faces, keyed by normalized face name.
type Collection struct {
	sync.Mutex
	faces     []*Face
	byName    map[string]*Face
	listeners []listener
	nextID    int
}

// NewCollection creates an empty font collection.
func NewCollection() *Collection {
	return &Collection{
		byName: make(map[string]*Face),
	}
}

// AddFace pushes a face into the collection if it isn't contained yet.
//
// The face is stored using its normalized name as a key. If this key is
// already associated with a face, that face will not be overridden and is
// returned instead, together with false.
func (c *Collection) AddFace(f *Face) (*Face, bool) {
	if f == nil {
		tracer().Errorf("collection cannot store null face")
		return nil, false
	}
	key := NormalizeFacename(f.Name)
	c.Lock()
	if existing, ok := c.byName[key]; ok {
		c.Unlock()
		tracer().Debugf("collection already contains face %s", key)
		return existing, false
	}
	f.owner = c
	c.faces = append(c.faces, f)
	c.byName[key] = f
	c.Unlock()
	tracer().Debugf("collection stores face %s as %s", f.Name, key)
	for _, s := range f.sizes {
		c.notify(f, s)
	}
	return f, true
}

// Face returns the face stored under the normalized version of name.
func (c *Collection) Face(name string) (*Face, bool) {
	c.Lock()
	defer c.Unlock()
	f, ok := c.byName[NormalizeFacename(name)]
	return f, ok
}

// Faces returns all faces, in order of addition.
func (c *Collection) Faces() []*Face {
	c.Lock()
	defer c.Unlock()
	faces := make([]*Face, len(c.faces))
	copy(faces, c.faces)
	return faces
}

// EachSize calls fn for every size of every face in the collection.
func (c *Collection) EachSize(fn func(*Face, *Size)) {
	for _, f := range c.Faces() {
		for _, s := range f.Sizes() {
			fn(f, s)
		}
	}
}

// Listen registers fn to be called for every size becoming known to c from
// now on. It returns a function to unregister fn.
func (c *Collection) Listen(fn SizeListener) (cancel func()) {
	c.Lock()
	defer c.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return func() {
		c.Lock()
		defer c.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Collection) notify(f *Face, s *Size) {
	c.Lock()
	ls := make([]listener, len(c.listeners))
	copy(ls, c.listeners)
	c.Unlock()
	for _, l := range ls {
		l.fn(f, s)
	}
}

// LogFaceList is a helper function to dump the list of known faces and
// sizes to the trace (log-level Info).
func (c *Collection) LogFaceList() {
	tracer().Infof("--- known faces ---")
	for _, f := range c.Faces() {
		pts := make([]float64, 0, len(f.sizes))
		for _, s := range f.Sizes() {
			pts = append(pts, s.PtSize)
		}
		sort.Float64s(pts)
		tracer().Infof("face [%s] sizes = %v", f.Name, pts)
	}
	tracer().Infof("-------------------")
}

// NormalizeFacename returns a lower-case version of a face name, with
// spaces replaced by underscores and a file extension removed.
func NormalizeFacename(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}
