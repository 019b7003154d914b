package assets

import (
	"context"
	"io/fs"
)

// AtlasPromise is returned by ResolveAtlas. Atlas blocks until loading has
// completed; it may be called more than once.
type AtlasPromise interface {
	Atlas() (*Atlas, error)
	AtlasContext(ctx context.Context) (*Atlas, error)
}

type atlasLoader struct {
	done  chan struct{}
	atlas *Atlas
	err   error
}

func (loader *atlasLoader) Atlas() (*Atlas, error) {
	return loader.AtlasContext(context.Background())
}

func (loader *atlasLoader) AtlasContext(ctx context.Context) (*Atlas, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.atlas, loader.err
	}
}

// ResolveAtlas loads an atlas in the background, see LoadAtlas.
func ResolveAtlas(fsys fs.FS, root string) AtlasPromise {
	loader := &atlasLoader{done: make(chan struct{})}
	go func() {
		loader.atlas, loader.err = LoadAtlas(fsys, root)
		close(loader.done)
	}()
	return loader
}
