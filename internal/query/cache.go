package query

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/athletetrack/athletetrack/internal/logger"
)

// Key identifies one cached server collection: a resource tag plus the id of
// the user whose records it holds.
type Key struct {
	Resource string
	UserID   string
}

// Fetcher loads one resource from the server.
type Fetcher func(ctx context.Context) (interface{}, error)

type entry struct {
	data     interface{}
	err      error
	loaded   bool // a good value has been committed at least once
	stale    bool // invalidated; next observer refetches
	fetching bool
	seq      int // sequence of the most recently started fetch
	inval    int // bumped on every invalidation
}

// Cache is a keyed read-through cache of server responses with
// stale-while-revalidate semantics. It is a process-wide singleton owned by
// the update loop: every mutation happens on the single event-loop goroutine,
// so no locking is needed. Fetchers run in background commands and report
// back as ResultMsg values, which the loop feeds to Apply.
type Cache struct {
	entries map[Key]*entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// Result is the observer-facing view of a cache entry.
type Result struct {
	Data interface{}
	Err  error
	// Loaded is true once any value has been committed; observers keep
	// showing it while a background refetch runs.
	Loaded bool
	// Loading is true only when there is no previous value to display.
	Loading bool
	// Fetching is true while any fetch for the key is in flight.
	Fetching bool
}

// Get returns the current view of a key without triggering a fetch.
func (c *Cache) Get(key Key) Result {
	e, ok := c.entries[key]
	if !ok {
		return Result{Loading: true}
	}
	return Result{
		Data:     e.data,
		Err:      e.err,
		Loaded:   e.loaded,
		Loading:  !e.loaded,
		Fetching: e.fetching,
	}
}

// ResultMsg delivers a finished fetch back to the update loop.
type ResultMsg struct {
	Key   Key
	Seq   int
	Inval int
	Data  interface{}
	Err   error
}

// Fetch returns a command that loads the key in the background, or nil when
// the entry is already fresh or a fetch is in flight. Concurrent observers of
// the same key therefore share a single outgoing request.
func (c *Cache) Fetch(key Key, fetcher Fetcher) tea.Cmd {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	if e.fetching {
		return nil
	}
	if e.loaded && !e.stale {
		return nil
	}
	e.fetching = true
	e.seq++
	seq, inval := e.seq, e.inval
	return func() tea.Msg {
		data, err := fetcher(context.Background())
		return ResultMsg{Key: key, Seq: seq, Inval: inval, Data: data, Err: err}
	}
}

// Apply commits a fetch result. Results are discarded when the entry was
// evicted, when a newer fetch has started, or when the key was invalidated
// after the fetch began (last write wins on the key).
func (c *Cache) Apply(msg ResultMsg) {
	e, ok := c.entries[msg.Key]
	if !ok {
		// Evicted while in flight (logout or user switch): drop.
		return
	}
	if msg.Seq != e.seq {
		return
	}
	e.fetching = false
	if msg.Inval != e.inval {
		logger.Debug("Discarding fetch result for invalidated key",
			"resource", msg.Key.Resource, "user", msg.Key.UserID)
		return
	}
	if msg.Err != nil {
		// Keep the previous good value visible; surface the error alongside.
		e.err = msg.Err
		return
	}
	e.data = msg.Data
	e.err = nil
	e.loaded = true
	e.stale = false
}

// Invalidate marks every entry for the resource stale, across users. The next
// observer of a marked key triggers a refetch; in-flight results are dropped.
func (c *Cache) Invalidate(resource string) {
	for key, e := range c.entries {
		if key.Resource == resource {
			e.stale = true
			e.inval++
		}
	}
}

// InvalidateKey marks a single key stale.
func (c *Cache) InvalidateKey(key Key) {
	if e, ok := c.entries[key]; ok {
		e.stale = true
		e.inval++
	}
}

// EvictAll empties the cache. Called when the session ends or changes user so
// records never leak across users.
func (c *Cache) EvictAll() {
	c.entries = make(map[Key]*entry)
}

// Records converts a Result's payload to a typed slice, tolerating the
// not-yet-loaded nil.
func Records[T any](r Result) []T {
	if r.Data == nil {
		return nil
	}
	if v, ok := r.Data.([]T); ok {
		return v
	}
	return nil
}
