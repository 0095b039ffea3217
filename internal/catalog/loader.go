package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"face-gallery/internal/drive"
	"face-gallery/internal/logger"

	"golang.org/x/sync/errgroup"
)

// Loader fetches the face directory and the Drive index
type Loader struct {
	directory Source
	index     Source
	logger    *slog.Logger
}

// NewLoader creates a loader for the two table sources
func NewLoader(directory, index Source) *Loader {
	return &Loader{
		directory: directory,
		index:     index,
		logger:    logger.WithComponent("catalog-loader"),
	}
}

// Load fetches and decodes both tables concurrently. Either failing fails the load and
// no partial catalog is returned.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	start := time.Now()

	var (
		dir *Directory
		idx Index
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dir = NewDirectory()
		if err := decodeSource(gctx, l.directory, dir); err != nil {
			return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		raw := map[string]*string{}
		if err := decodeSource(gctx, l.index, &raw); err != nil {
			return fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
		}
		idx = normalizeIndex(raw)
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.Error("catalog load failed", "error", err, "directory", l.directory.String(), "index", l.index.String())
		return nil, err
	}

	l.logger.Info("catalog loaded",
		"people", dir.Len(),
		"indexed_files", len(idx),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return New(dir, idx), nil
}

func decodeSource(ctx context.Context, src Source, v any) error {
	rc, err := src.Open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", src.String(), err)
	}
	return nil
}

// normalizeIndex drops null IDs and reduces Drive share links to their file ID
func normalizeIndex(raw map[string]*string) Index {
	idx := make(Index, len(raw))
	for filename, id := range raw {
		if id == nil {
			continue
		}
		idx[filename] = drive.FileID(*id)
	}
	return idx
}
