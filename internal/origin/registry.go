// Package origin extracts the (scheme, host, port) identity of a URL and
// lazily hands out a bounded gate per origin, so that no single origin
// server can monopolize the process's article-fetching concurrency.
package origin

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/YuchiLiuS/newsaggregator/internal/gate"
)

// Registry lazily creates and caches one gate per origin. The registry's
// own mutex is held only across the map lookup/insertion, never across a
// gate's Acquire — this is the lock-ordering discipline the aggregator
// relies on to avoid deadlock.
type Registry struct {
	capacity int

	mu       sync.Mutex
	limiters map[string]*gate.Gate
}

// NewRegistry constructs a Registry whose limiters are created on demand
// with the given per-origin capacity.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		limiters: make(map[string]*gate.Gate),
	}
}

// Acquire reserves one slot against the origin identified by rawURL,
// creating that origin's gate on first observation. It blocks until a
// slot is free or ctx is done.
func (r *Registry) Acquire(ctx context.Context, rawURL string) (release func(), err error) {
	key, err := Key(rawURL)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	g, ok := r.limiters[key]
	if !ok {
		g = gate.New(r.capacity)
		r.limiters[key] = g
	}
	r.mu.Unlock()

	return g.Acquire(ctx)
}

// Key computes the origin identity of rawURL: lowercased scheme and host,
// with the default port for the scheme elided. Origin extraction must
// agree across the whole system, so this is the single normalization
// point every caller goes through.
func Key(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("origin: parse url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("origin: url %q has no host", rawURL)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()

	if port == "" || isDefaultPort(scheme, port) {
		return scheme + "://" + host, nil
	}
	return scheme + "://" + host + ":" + port, nil
}

func isDefaultPort(scheme, port string) bool {
	switch scheme {
	case "http":
		return port == "80"
	case "https":
		return port == "443"
	default:
		return false
	}
}
