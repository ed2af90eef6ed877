// Package manifest builds OpenRosa xformsManifest documents for a set of
// form media files, fetching and hashing any file that has no known hash.
package manifest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-logr/logr"

	"github.com/digidem/openrosa-manifest/pkg/types"
)

// Option configures manifest creation.
type Option func(*config)

type config struct {
	headers     http.Header
	client      *http.Client
	timeout     time.Duration
	fetcher     Fetcher
	concurrency int
	log         logr.Logger
}

// WithHeaders adds headers to every outbound fetch. Names are canonicalized
// and override the defaults, including User-Agent.
func WithHeaders(headers map[string]string) Option {
	return func(c *config) {
		names := make([]string, 0, len(headers))
		for name := range headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			c.headers.Set(name, headers[name])
		}
	}
}

// WithHTTPClient sets the client used by the default fetcher.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithTimeout bounds each fetch, including reading the body.
// Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithFetcher replaces the HTTP transport entirely. WithHTTPClient and
// WithTimeout have no effect when a fetcher is set.
func WithFetcher(f Fetcher) Option {
	return func(c *config) {
		c.fetcher = f
	}
}

// WithConcurrency caps the number of files resolved at once.
// Zero or less means every file is resolved at the same time.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

// WithLogger sets the logger. Per-file events are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		headers: http.Header{},
		log:     logr.Discard(),
	}
	cfg.headers.Set("User-Agent", DefaultUserAgent)
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.fetcher == nil {
		client := cfg.client
		if client == nil {
			client = &http.Client{}
		}
		if cfg.timeout > 0 {
			withTimeout := *client
			withTimeout.Timeout = cfg.timeout
			client = &withTimeout
		}
		cfg.fetcher = &httpFetcher{client: client}
	}
	return cfg
}

// Create resolves every file and renders the manifest XML.
//
// Files are resolved concurrently. The first error cancels the remaining
// fetches and is returned with an empty document; a manifest is never
// produced for a subset of files.
func Create(ctx context.Context, files []types.FileDescriptor, opts ...Option) (string, error) {
	// 1. Configure
	cfg := newConfig(opts...)
	cfg.log.V(1).Info("creating manifest", "files", len(files), "headers", redactHeaders(cfg.headers))

	// 2. Resolve hashes
	records, err := resolveAll(ctx, files, cfg)
	if err != nil {
		return "", err
	}

	// 3. Render
	return Assemble(records)
}
