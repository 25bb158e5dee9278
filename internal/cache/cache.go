// Package cache is a TTL-based read-through cache over the usage fetcher.
// A failed refresh never erases previously cached data and is never
// surfaced as an error: the caller always gets Fresh, Stale, or Unknown.
package cache

import (
	"context"
	"time"

	"github.com/LounisBou/claudeline/internal/api"
)

// DefaultTTL is used when the configured TTL is missing or non-positive.
const DefaultTTL = 60 * time.Second

// Entry is the persisted record of the last successful fetch.
type Entry struct {
	ObservedAt time.Time
	Snapshot   api.Snapshot
}

// Store is the persistence capability the cache reads through. Load
// returns (nil, nil) when no entry has ever been written.
type Store interface {
	Load() (*Entry, error)
	Save(Entry) error
}

// FetchFunc performs one live fetch attempt, bounded by ctx.
type FetchFunc func(ctx context.Context) (*api.Snapshot, error)

// State tags the provenance of a usage result.
type State int

const (
	// Unknown means no usage data has ever been obtained.
	Unknown State = iota
	// Fresh means the snapshot is within its TTL or was just fetched.
	Fresh
	// Stale means a refresh failed and an older snapshot is served instead.
	Stale
)

// Result is the externally consumed outcome of GetUsage. Snapshot is nil
// iff State is Unknown.
type Result struct {
	State    State
	Snapshot *api.Snapshot
}

// GetUsage resolves the current usage through the three-tier fallback
// chain: fresh cache, live fetch, stale cache, unknown.
func GetUsage(ctx context.Context, store Store, fetch FetchFunc, ttl time.Duration) Result {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	entry, err := store.Load()
	if err != nil {
		// A corrupt or unreadable cache file is the same as no cache.
		entry = nil
	}
	if entry != nil && time.Since(entry.ObservedAt) < ttl {
		snap := entry.Snapshot
		return Result{State: Fresh, Snapshot: &snap}
	}

	if fetch != nil {
		snap, err := fetch(ctx)
		if err == nil && snap != nil {
			// A lost write between concurrent invocations is harmless;
			// whichever Save lands last wins.
			_ = store.Save(Entry{ObservedAt: snap.ObservedAt, Snapshot: *snap})
			return Result{State: Fresh, Snapshot: snap}
		}
	}

	if entry != nil {
		snap := entry.Snapshot
		return Result{State: Stale, Snapshot: &snap}
	}
	return Result{State: Unknown}
}
