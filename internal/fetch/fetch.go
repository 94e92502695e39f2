// Package fetch resolves versioned binary artifacts by (language code,
// name): cache lookup first, then an HTTP fetch from the artifact store,
// gunzip, and a best-effort write back into the cache. The cache path is
// keyed by the facade version, so a version bump invalidates every cached
// artifact without any integrity bookkeeping.
package fetch

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseURL is the artifact store all releases publish to.
const DefaultBaseURL = "https://github.com/bminixhofer/nlprule/raw"

// Typed failures, wrapped into the public error kinds by the facade.
var (
	// ErrBadName marks a resource name without the required .gz suffix.
	ErrBadName = errors.New("fetch: resource name must end in .gz")
	// ErrUnavailable marks a transport failure that left no usable payload.
	ErrUnavailable = errors.New("fetch: resource unavailable")
	// ErrCorrupt marks a payload that could not be decompressed.
	ErrCorrupt = errors.New("fetch: resource corrupt")
)

// Client fetches artifacts. The zero value is not usable; construct with
// New.
type Client struct {
	version  string
	baseURL  string
	cacheDir string
	http     *http.Client
	log      *slog.Logger
}

// Option adjusts a Client.
type Option func(*Client)

// WithBaseURL overrides the artifact store URL. Meant for tests and
// mirrors.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithCacheDir overrides the cache root. An empty string disables caching.
func WithCacheDir(dir string) Option {
	return func(c *Client) { c.cacheDir = dir }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client for the given facade version. By default artifacts
// are cached under the user cache directory; if no cache directory can be
// determined, caching is skipped and every miss hits the network.
func New(version string, opts ...Option) *Client {
	c := &Client{
		version: version,
		baseURL: DefaultBaseURL,
		http:    &http.Client{},
		log:     slog.Default(),
	}
	if dir := os.Getenv("NLPRULE_CACHE_DIR"); dir != "" {
		c.cacheDir = dir
	} else if dir, err := os.UserCacheDir(); err == nil {
		c.cacheDir = filepath.Join(dir, "nlprule")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CachePath returns where the decompressed artifact is cached, or "" when
// caching is disabled. The name loses its .gz suffix on disk.
func (c *Client) CachePath(code, name string) string {
	if c.cacheDir == "" {
		return ""
	}
	return filepath.Join(c.cacheDir, c.version, code, strings.TrimSuffix(name, ".gz"))
}

// Fetch returns the decompressed bytes of the named artifact for code.
func (c *Client) Fetch(code, name string) ([]byte, error) {
	if !strings.HasSuffix(name, ".gz") {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	cachePath := c.CachePath(code, name)
	if cachePath != "" {
		if data, err := os.ReadFile(cachePath); err == nil {
			return data, nil
		}
	}

	data, err := c.download(code, name)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		c.writeCache(cachePath, data)
	}
	return data, nil
}

func (c *Client) download(code, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/storage/%s/%s", c.baseURL, c.version, code, name)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnavailable, url, resp.Status)
	}

	compressed, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, url, err)
	}

	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: gunzip %s: %v", ErrCorrupt, name, err)
	}
	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("%w: gunzip %s: %v", ErrCorrupt, name, err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("%w: gunzip %s: %v", ErrCorrupt, name, err)
	}
	return data, nil
}

// writeCache stores data at path via a temp file and rename, so concurrent
// writers cannot leave a torn artifact. Failures are logged and swallowed:
// any correctly decompressed copy is equivalent and the caller already has
// the bytes.
func (c *Client) writeCache(path string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		c.log.Debug("artifact cache write skipped", "path", path, "error", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		c.log.Debug("artifact cache write skipped", "path", path, "error", err)
		return
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		c.log.Debug("artifact cache write failed", "path", path, "error", errors.Join(werr, cerr))
		return
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		c.log.Debug("artifact cache write failed", "path", path, "error", err)
	}
}
