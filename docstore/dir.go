package docstore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/mnoda"
)

// LoadDir loads every document file directly under dir, in lexical
// filename order. Files ending in ".json" or ".json.zst" are considered
// document files; anything else is skipped. Documents are decoded in
// parallel, bounded by WithConcurrency; the first failure cancels the
// remaining work and is returned.
func LoadDir(ctx context.Context, dir string, loader *mnoda.RecordLoader, opts ...Option) ([]*mnoda.Document, error) {
	o := applyOptions(opts)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json"+compressedExt) {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)

	docs := make([]*mnoda.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := Load(path, loader, opts...)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Debug("loaded document directory", "dir", dir, "documents", len(docs))

	return docs, nil
}
