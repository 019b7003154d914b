package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"path"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/tyse-emoji/core"
	"github.com/npillmayer/tyse-emoji/core/emoji"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture is an image asset. Texture data is not held in memory.
type Texture struct {
	Name   string // asset name
	Path   string // path within the file system the atlas was loaded from
	Format string // image format, as reported by package image
	w, h   int
}

// NewTexture creates a texture of a given size, not backed by a file.
func NewTexture(name string, width, height int) *Texture {
	return &Texture{Name: name, w: width, h: height}
}

// Width is part of interface emoji.Texture.
func (t *Texture) Width() int { return t.w }

// Height is part of interface emoji.Texture.
func (t *Texture) Height() int { return t.h }

func (t *Texture) String() string {
	return fmt.Sprintf("%s[%dx%d]", t.Name, t.w, t.h)
}

// Atlas is a collection of textures, ordered by insertion.
type Atlas struct {
	textures *linkedhashmap.Map
}

var _ emoji.AssetProvider = &Atlas{}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{textures: linkedhashmap.New()}
}

// Put stores a texture under a name. A texture already stored under this
// name is replaced, but keeps its position.
func (a *Atlas) Put(name string, tex *Texture) {
	a.textures.Put(name, tex)
}

// Get returns the texture stored under name.
func (a *Atlas) Get(name string) (*Texture, bool) {
	v, ok := a.textures.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Texture), true
}

// Len returns the number of textures in a.
func (a *Atlas) Len() int {
	return a.textures.Size()
}

// Names returns the names of all textures, in order of insertion.
func (a *Atlas) Names() []string {
	names := make([]string, 0, a.textures.Size())
	for _, k := range a.textures.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// EachTexture is part of interface emoji.AssetProvider.
func (a *Atlas) EachTexture(fn func(name string, tex emoji.Texture) bool) {
	it := a.textures.Iterator()
	for it.Next() {
		if !fn(it.Key().(string), it.Value().(*Texture)) {
			return
		}
	}
}

// LoadAtlas collects all images below root in fsys into an atlas, in lexical
// order of their paths. Files which are not recognized as images are skipped.
//
// If root does not exist, an error with code core.EMISSING is returned.
func LoadAtlas(fsys fs.FS, root string) (*Atlas, error) {
	if root == "" {
		root = "."
	}
	atlas := NewAtlas()
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		tex, err := readTexture(fsys, p, assetName(root, p))
		if err != nil {
			tracer().Infof("skipping asset %s: %v", p, err)
			return nil
		}
		atlas.Put(tex.Name, tex)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFound(root)
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot read assets below %s", root)
	}
	tracer().Infof("loaded %d textures from %s", atlas.Len(), root)
	return atlas, nil
}

// NotFound returns an application error for a missing asset directory.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "assets not found: %s", res)
}

func readTexture(fsys fs.FS, p, name string) (*Texture, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	tex := &Texture{Name: name, Path: p, Format: format, w: config.Width, h: config.Height}
	tracer().Debugf("asset %s", tex)
	return tex, nil
}

// assetName strips root and the file extension from p.
func assetName(root, p string) string {
	if root != "." {
		p = strings.TrimPrefix(p, root)
		p = strings.TrimPrefix(p, "/")
	}
	return strings.TrimSuffix(p, path.Ext(p))
}
