package nlprule

import (
	"errors"
	"fmt"

	"github.com/Qeenon/nlprule/internal/binpack"
	"github.com/Qeenon/nlprule/internal/fetch"
)

// LoadOption adjusts artifact resolution for LoadTokenizer and LoadRules.
type LoadOption func(*loadConfig)

type loadConfig struct {
	cacheDir string
}

// WithCacheDir overrides the artifact cache root for this load. The
// NLPRULE_CACHE_DIR environment variable stays available as a user-facing
// override when no explicit cache root is given.
func WithCacheDir(dir string) LoadOption {
	return func(c *loadConfig) { c.cacheDir = dir }
}

// fetchArtifact resolves a versioned artifact through the cache-or-download
// path and maps resolver failures onto the public error kinds.
func fetchArtifact(code, name string, opts []LoadOption) ([]byte, error) {
	var lc loadConfig
	for _, opt := range opts {
		opt(&lc)
	}
	var fetchOpts []fetch.Option
	if lc.cacheDir != "" {
		fetchOpts = append(fetchOpts, fetch.WithCacheDir(lc.cacheDir))
	}

	data, err := fetch.New(Version, fetchOpts...).Fetch(code, name)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fetch.ErrBadName):
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	case errors.Is(err, fetch.ErrCorrupt):
		return nil, fmt.Errorf("%w: %v", ErrResourceCorrupt, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
}

// openArchive parses artifact bytes already held in memory.
func openArchive(data []byte) (*binpack.Archive, error) {
	a, err := binpack.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceCorrupt, err)
	}
	return a, nil
}

// openArchiveFile memory-maps an artifact file. A missing or unreadable
// file is a resource failure, not corruption.
func openArchiveFile(path string) (*binpack.Archive, error) {
	a, err := binpack.Open(path)
	if err != nil {
		if errors.Is(err, binpack.ErrMalformed) {
			return nil, fmt.Errorf("%w: %v", ErrResourceCorrupt, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	return a, nil
}
