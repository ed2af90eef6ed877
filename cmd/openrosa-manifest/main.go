// openrosa-manifest prints an OpenRosa xformsManifest document for a set of
// form media files. Files come from a YAML config (--config), from
// positional URLs, or both.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/digidem/openrosa-manifest/pkg/config"
	"github.com/digidem/openrosa-manifest/pkg/manifest"
	"github.com/digidem/openrosa-manifest/pkg/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		headers     []string
		timeout     time.Duration
		concurrency int
		output      string
		verbose     bool
	)

	flagSet := pflag.NewFlagSet("openrosa-manifest", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "YAML file listing files, headers and limits")
	flagSet.StringArrayVar(&headers, "header", nil, `extra request header as "Name: value" (repeatable)`)
	flagSet.DurationVar(&timeout, "timeout", 0, "per-fetch timeout (0 disables)")
	flagSet.IntVar(&concurrency, "concurrency", 0, "maximum simultaneous fetches (0 is unlimited)")
	flagSet.StringVarP(&output, "output", "o", "", "write the manifest to this path instead of stdout")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log each fetch to stderr")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  openrosa-manifest [flags] [url...]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	for _, url := range flagSet.Args() {
		cfg.Files = append(cfg.Files, types.FileDescriptor{URL: url})
	}
	if flagSet.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flagSet.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if len(headers) > 0 {
		parsed, err := parseHeaders(headers)
		if err != nil {
			return err
		}
		merged := make(map[string]string, len(cfg.Headers)+len(parsed))
		for name, value := range cfg.Headers {
			merged[http.CanonicalHeaderKey(name)] = value
		}
		for name, value := range parsed {
			merged[http.CanonicalHeaderKey(name)] = value
		}
		cfg.Headers = merged
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, sync := newLogger(stderr, verbose)
	defer sync()

	opts := append(cfg.Options(), manifest.WithLogger(log))
	doc, err := manifest.Create(ctx, cfg.Files, opts...)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := fmt.Fprintln(stdout, doc)
		return err
	}
	path, err := manifest.WriteFile(filepath.Dir(output), filepath.Base(output), doc+"\n")
	if err != nil {
		return err
	}
	log.Info("wrote manifest", "path", path, "files", len(cfg.Files))
	return nil
}

// parseHeaders splits "Name: value" pairs.
func parseHeaders(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected \"Name: value\"", h)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

// newLogger logs JSON at warn level, or human-readable debug output
// (including per-file V(1) events) when verbose.
func newLogger(w io.Writer, verbose bool) (logr.Logger, func()) {
	level := zapcore.WarnLevel
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	zapLog := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
	return zapr.NewLogger(zapLog), func() { _ = zapLog.Sync() }
}
