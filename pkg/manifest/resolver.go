package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/digidem/openrosa-manifest/pkg/types"
)

// resolveAll resolves files concurrently. Results keep the input order.
func resolveAll(ctx context.Context, files []types.FileDescriptor, cfg *config) ([]types.MediaFile, error) {
	records := make([]types.MediaFile, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.concurrency > 0 {
		g.SetLimit(cfg.concurrency)
	}
	for i, file := range files {
		g.Go(func() error {
			record, err := resolve(gctx, i, file, cfg)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func resolve(ctx context.Context, index int, file types.FileDescriptor, cfg *config) (types.MediaFile, error) {
	if file.URL == "" {
		return types.MediaFile{}, fmt.Errorf("file %d: %w", index, ErrMissingURL)
	}

	record := types.MediaFile{
		Filename:    file.Filename,
		DownloadURL: file.URL,
		Hash:        file.Hash,
	}
	if record.Filename == "" {
		name, err := FilenameFromURL(file.URL)
		if err != nil {
			return types.MediaFile{}, err
		}
		record.Filename = name
	}

	log := cfg.log.WithValues("url", redactURL(file.URL), "filename", record.Filename)
	if record.Hash != "" {
		log.V(1).Info("using supplied hash", "hash", record.Hash)
		return record, nil
	}

	log.V(1).Info("fetching media file")
	hash, err := fetchHash(ctx, file.URL, cfg.fetcher, cfg.headers)
	if err != nil {
		return types.MediaFile{}, err
	}
	record.Hash = hash
	log.V(1).Info("computed hash", "hash", hash)
	return record, nil
}

// fetchHash streams the resource through a fresh accumulator.
func fetchHash(ctx context.Context, url string, fetcher Fetcher, header http.Header) (string, error) {
	body, err := fetcher.Fetch(ctx, url, header)
	if err != nil {
		return "", asFetchError(url, err)
	}
	defer func() { _ = body.Close() }()

	acc := newMD5Accumulator()
	if _, err := io.Copy(acc, body); err != nil {
		return "", asFetchError(url, err)
	}
	return acc.Finish(), nil
}
