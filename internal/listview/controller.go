// Package listview owns the pagination, filter, and mutation state
// behind every dashboard table. One Controller wraps one entity's
// gateway; the web layer only reads snapshots and forwards user input.
package listview

import (
	"context"
	"sync"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/gateway"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/notify"
)

// Entity is any row with an opaque identifier.
type Entity interface {
	EntityID() string
}

// Fetcher loads one page for the given query.
type Fetcher[T Entity] func(ctx context.Context, q gateway.ListQuery) (gateway.ListResult[T], error)

// MutateFunc flips one row and returns the server-echoed updated row.
type MutateFunc[T Entity] func(ctx context.Context, id string) (T, error)

// DeleteFunc removes one row.
type DeleteFunc func(ctx context.Context, id string) error

const (
	defaultDebounce = 350 * time.Millisecond
	defaultPageSize = 10
)

// Config wires a Controller to its gateway. Fetch is required; the
// mutation funcs may be nil for read-only tables (logbook has no
// activate/deactivate).
type Config[T Entity] struct {
	// Label names the entity in notifications, e.g. "Pilot user".
	Label      string
	Fetch      Fetcher[T]
	Activate   MutateFunc[T]
	Deactivate MutateFunc[T]
	Delete     DeleteFunc
	Notifier   notify.Notifier
	// Debounce is the search-as-you-type delay.
	Debounce time.Duration
	PageSize int
	// BaseContext is used by debounce-triggered fetches, which outlive
	// the request that typed the keystroke. Defaults to Background.
	BaseContext context.Context
}

// Controller holds {page, limit, search, status} plus the derived
// {items, total, loading, err} for one entity table. All mutation of
// controller state happens under one mutex; gateway calls run outside it.
type Controller[T Entity] struct {
	mu  sync.Mutex
	cfg Config[T]

	query   gateway.ListQuery
	items   []T
	total   int
	loading bool
	errMsg  string

	// seq tags issued fetches. A completion whose tag is no longer the
	// latest issued is discarded, so an old slow response can never
	// overwrite a newer one.
	seq uint64

	timer *time.Timer

	activatingID   string
	deactivatingID string
	deletingID     string
}

// New creates a controller with page 1 and the configured page size.
// It does not fetch; call Refresh for the initial load.
func New[T Entity](cfg Config[T]) *Controller[T] {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.LogNotifier{}
	}
	if cfg.BaseContext == nil {
		cfg.BaseContext = context.Background()
	}

	return &Controller[T]{
		cfg:   cfg,
		query: gateway.ListQuery{Page: 1, Limit: cfg.PageSize},
	}
}

// Refresh re-fetches with the current query.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.runFetch(ctx)
}

// SetPage moves to page n (clamped to 1) and fetches immediately.
func (c *Controller[T]) SetPage(ctx context.Context, n int) {
	c.mu.Lock()
	if n < 1 {
		n = 1
	}
	c.query.Page = n
	c.mu.Unlock()

	c.runFetch(ctx)
}

// SetLimit changes the page size, resets to page 1, and fetches.
func (c *Controller[T]) SetLimit(ctx context.Context, n int) {
	c.mu.Lock()
	if n < 1 {
		n = defaultPageSize
	}
	c.query.Limit = n
	c.query.Page = 1
	c.mu.Unlock()

	c.runFetch(ctx)
}

// SetStatus changes the status filter, resets to page 1, and fetches.
func (c *Controller[T]) SetStatus(ctx context.Context, status string) {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 1
	c.mu.Unlock()

	c.runFetch(ctx)
}

// SetSearch updates the search text right away (so the input stays
// controlled) but defers the fetch by the debounce window. Only the last
// pending timer fires; earlier ones are cancelled here.
func (c *Controller[T]) SetSearch(_ context.Context, text string) {
	c.mu.Lock()
	c.query.Search = text
	c.query.Page = 1
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.Debounce, func() {
		c.runFetch(c.cfg.BaseContext)
	})
	c.mu.Unlock()
}

// runFetch issues one tagged fetch and applies the result only if no
// newer fetch was issued meanwhile.
func (c *Controller[T]) runFetch(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	q := c.query
	c.loading = true
	c.mu.Unlock()

	result, err := c.cfg.Fetch(ctx, q)

	c.mu.Lock()
	if seq != c.seq {
		// A newer fetch owns the state now.
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		// Keep the stale list visible; only the error banner changes.
		c.errMsg = client.Message(err)
		c.mu.Unlock()
		c.cfg.Notifier.Error(client.Message(err))
		return
	}
	c.items = result.Items
	c.total = result.Total
	c.errMsg = ""
	c.mu.Unlock()
}
