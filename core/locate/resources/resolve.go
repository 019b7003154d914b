package resources

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/tyse-emoji/core"
	"github.com/npillmayer/tyse-emoji/core/font/pixelfont"
)

// FontPathKey is the configuration key for a list of font directories,
// separated by os.PathListSeparator.
const FontPathKey = "emoji.fontpath"

// NotFound returns an application error for a missing font.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// LocateFont returns the path of the font file for name. conf may be nil.
func LocateFont(conf schuko.Configuration, name string) (string, error) {
	if name == "" {
		return "", NotFound(name)
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	if conf != nil {
		for _, dir := range filepath.SplitList(conf.GetString(FontPathKey)) {
			if dir == "" {
				continue
			}
			if fname, ok := findInDir(os.DirFS(dir), name); ok {
				tracer().Debugf("found font %s in %s", name, dir)
				return filepath.Join(dir, fname), nil
			}
		}
	}
	fpath, err := findfont.Find(name) // try to find as system font
	if err == nil && fpath != "" {
		tracer().Debugf("%s is a system font", name)
		return fpath, nil
	}
	return "", NotFound(name)
}

func findInDir(fsys fs.FS, name string) (string, bool) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		tracer().Errorf("cannot read font directory: %v", err)
		return "", false
	}
	want := pixelfont.NormalizeFacename(name)
	for _, e := range entries {
		if e.IsDir() || !isFontFile(e.Name()) {
			continue
		}
		if pixelfont.NormalizeFacename(e.Name()) == want {
			return e.Name(), true
		}
	}
	return "", false
}

func isFontFile(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".ttf", ".otf", ".fnt":
		return true
	}
	return false
}

// LoadFace loads a font file as a pixel font face. BMFont descriptors carry
// their own size, for OpenType fonts a size variant is created for every
// entry of sizes.
func LoadFace(fpath string, sizes ...float64) (*pixelfont.Face, error) {
	if strings.ToLower(filepath.Ext(fpath)) != ".fnt" {
		return pixelfont.LoadOpenTypeFace(fpath, sizes...)
	}
	f, err := os.Open(fpath)
	if err != nil {
		return nil, NotFound(fpath)
	}
	defer f.Close()
	return pixelfont.LoadBMFont(f)
}

// --- Promises --------------------------------------------------------------

// FacePromise is returned by ResolveFace. Face blocks until loading has
// completed; it may be called more than once.
type FacePromise interface {
	Face() (*pixelfont.Face, error)
	FaceContext(ctx context.Context) (*pixelfont.Face, error)
}

type faceLoader struct {
	done chan struct{}
	face *pixelfont.Face
	err  error
}

func (loader *faceLoader) Face() (*pixelfont.Face, error) {
	return loader.FaceContext(context.Background())
}

func (loader *faceLoader) FaceContext(ctx context.Context) (*pixelfont.Face, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.face, loader.err
	}
}

// ResolveFace locates a font by name and loads it in the background, see
// LocateFont and LoadFace.
func ResolveFace(conf schuko.Configuration, name string, sizes ...float64) FacePromise {
	loader := &faceLoader{done: make(chan struct{})}
	go func() {
		defer close(loader.done)
		fpath, err := LocateFont(conf, name)
		if err != nil {
			loader.err = err
			return
		}
		loader.face, loader.err = LoadFace(fpath, sizes...)
		if loader.err == nil {
			tracer().Infof("loaded face %s from %s", loader.face.Name, fpath)
		}
	}()
	return loader
}
