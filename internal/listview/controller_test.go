package listview

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/gateway"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/notify"
)

type testRow struct {
	ID     string
	Status string
}

func (r testRow) EntityID() string { return r.ID }

// fixtureFetch returns the given rows and records every query it saw.
func fixtureFetch(rows []testRow, total int) (Fetcher[testRow], *[]gateway.ListQuery) {
	var mu sync.Mutex
	queries := &[]gateway.ListQuery{}
	fetch := func(ctx context.Context, q gateway.ListQuery) (gateway.ListResult[testRow], error) {
		mu.Lock()
		*queries = append(*queries, q)
		mu.Unlock()
		return gateway.ListResult[testRow]{Items: rows, Total: total}, nil
	}
	return fetch, queries
}

func TestController_PageAndLimitPropagate(t *testing.T) {
	fetch, queries := fixtureFetch([]testRow{{ID: "a", Status: "ACTIVE"}}, 1)
	c := New(Config[testRow]{Label: "Row", Fetch: fetch, PageSize: 10})

	c.SetPage(context.Background(), 3)

	if len(*queries) != 1 {
		t.Fatalf("Expected 1 fetch, got %d", len(*queries))
	}
	q := (*queries)[0]
	if q.Page != 3 || q.Limit != 10 {
		t.Errorf("Expected page=3 limit=10 requested, got page=%d limit=%d", q.Page, q.Limit)
	}

	s := c.Snapshot()
	if s.Page != 3 || s.Limit != 10 {
		t.Errorf("Expected snapshot page=3 limit=10, got page=%d limit=%d", s.Page, s.Limit)
	}
}

func TestController_LimitChangeResetsPage(t *testing.T) {
	fetch, queries := fixtureFetch(nil, 0)
	c := New(Config[testRow]{Label: "Row", Fetch: fetch})

	c.SetPage(context.Background(), 4)
	c.SetLimit(context.Background(), 25)

	last := (*queries)[len(*queries)-1]
	if last.Page != 1 || last.Limit != 25 {
		t.Errorf("Expected page reset to 1 with limit=25, got page=%d limit=%d", last.Page, last.Limit)
	}
}

func TestController_StatusChangeResetsPage(t *testing.T) {
	fetch, queries := fixtureFetch(nil, 0)
	c := New(Config[testRow]{Label: "Row", Fetch: fetch})

	c.SetPage(context.Background(), 2)
	c.SetStatus(context.Background(), "ACTIVE")

	last := (*queries)[len(*queries)-1]
	if last.Page != 1 {
		t.Errorf("Expected page reset to 1 after status change, got %d", last.Page)
	}
	if last.Status != "ACTIVE" {
		t.Errorf("Expected status ACTIVE in query, got %q", last.Status)
	}
}

func TestController_SearchDebounceCollapsesKeystrokes(t *testing.T) {
	var fetches int64
	var lastSearch atomic.Value
	fetch := func(ctx context.Context, q gateway.ListQuery) (gateway.ListResult[testRow], error) {
		atomic.AddInt64(&fetches, 1)
		lastSearch.Store(q.Search)
		return gateway.ListResult[testRow]{}, nil
	}

	c := New(Config[testRow]{Label: "Row", Fetch: fetch, Debounce: 30 * time.Millisecond})

	ctx := context.Background()
	for _, text := range []string{"a", "am", "ami", "amir", "amira"} {
		c.SetSearch(ctx, text)
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt64(&fetches); got != 1 {
		t.Fatalf("Expected exactly 1 fetch after debounce, got %d", got)
	}
	if got := lastSearch.Load(); got != "amira" {
		t.Errorf("Expected fetch with final search value, got %q", got)
	}

	s := c.Snapshot()
	if s.Search != "amira" {
		t.Errorf("Expected search text visible immediately, got %q", s.Search)
	}
	if s.Page != 1 {
		t.Errorf("Expected search to reset page to 1, got %d", s.Page)
	}
}

func TestController_StaleFetchDiscarded(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, q gateway.ListQuery) (gateway.ListResult[testRow], error) {
		if q.Page == 1 {
			// The older fetch finishes last.
			<-release
			return gateway.ListResult[testRow]{Items: []testRow{{ID: "old"}}, Total: 1}, nil
		}
		return gateway.ListResult[testRow]{Items: []testRow{{ID: "new"}}, Total: 2}, nil
	}

	c := New(Config[testRow]{Label: "Row", Fetch: fetch})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.SetPage(context.Background(), 1)
	}()
	time.Sleep(20 * time.Millisecond) // first fetch is in flight

	c.SetPage(context.Background(), 2)
	close(release)
	wg.Wait()

	s := c.Snapshot()
	if s.Total != 2 {
		t.Errorf("Expected the newer fetch to win, got total=%d", s.Total)
	}
	if len(s.Items) != 1 || s.Items[0].ID != "new" {
		t.Errorf("Expected items from the newer fetch, got %+v", s.Items)
	}
	if s.Loading {
		t.Error("Expected loading cleared after both fetches settled")
	}
}

func TestController_FetchFailureKeepsStaleList(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, q gateway.ListQuery) (gateway.ListResult[testRow], error) {
		calls++
		if calls == 1 {
			return gateway.ListResult[testRow]{Items: []testRow{{ID: "a"}}, Total: 1}, nil
		}
		return gateway.ListResult[testRow]{}, &client.APIError{StatusCode: 500, Message: "Failed to fetch rows"}
	}

	rec := &notify.Recorder{}
	c := New(Config[testRow]{Label: "Row", Fetch: fetch, Notifier: rec})

	ctx := context.Background()
	c.Refresh(ctx)
	c.Refresh(ctx)

	s := c.Snapshot()
	if len(s.Items) != 1 {
		t.Errorf("Expected stale items kept on failure, got %d items", len(s.Items))
	}
	if s.Err != "Failed to fetch rows" {
		t.Errorf("Expected error recorded, got %q", s.Err)
	}
	if last := rec.Last(); last.Kind != notify.KindError || last.Message != "Failed to fetch rows" {
		t.Errorf("Expected error notification, got %+v", last)
	}
}

func TestController_ActivatePatchesRowAndClearsTracker(t *testing.T) {
	fetch, _ := fixtureFetch([]testRow{
		{ID: "a", Status: "DEACTIVE"},
		{ID: "b", Status: "ACTIVE"},
	}, 2)

	activate := func(ctx context.Context, id string) (testRow, error) {
		return testRow{ID: id, Status: "ACTIVE"}, nil
	}

	rec := &notify.Recorder{}
	c := New(Config[testRow]{Label: "Row", Fetch: fetch, Activate: activate, Notifier: rec})

	ctx := context.Background()
	c.Refresh(ctx)
	c.Activate(ctx, "a")

	s := c.Snapshot()
	if s.Items[0].Status != "ACTIVE" {
		t.Errorf("Expected row a patched to ACTIVE, got %s", s.Items[0].Status)
	}
	if s.ActivatingID != "" {
		t.Errorf("Expected activating id cleared, got %q", s.ActivatingID)
	}
	if last := rec.Last(); last.Kind != notify.KindSuccess {
		t.Errorf("Expected success notification, got %+v", last)
	}
}

func TestController_FailedMutationLeavesRowUntouched(t *testing.T) {
	fetch, _ := fixtureFetch([]testRow{{ID: "a", Status: "ACTIVE"}}, 1)

	deactivate := func(ctx context.Context, id string) (testRow, error) {
		return testRow{}, &client.APIError{StatusCode: 404, Message: "Row not found"}
	}

	rec := &notify.Recorder{}
	c := New(Config[testRow]{Label: "Row", Fetch: fetch, Deactivate: deactivate, Notifier: rec})

	ctx := context.Background()
	c.Refresh(ctx)
	c.Deactivate(ctx, "a")

	s := c.Snapshot()
	if s.Items[0].Status != "ACTIVE" {
		t.Errorf("Expected row status unchanged on failure, got %s", s.Items[0].Status)
	}
	if s.DeactivatingID != "" {
		t.Errorf("Expected deactivating id cleared, got %q", s.DeactivatingID)
	}
	if last := rec.Last(); last.Message != "Row not found" {
		t.Errorf("Expected server message surfaced, got %q", last.Message)
	}
}

func TestController_DeleteRemovesRowAndDecrementsTotal(t *testing.T) {
	fetch, _ := fixtureFetch([]testRow{
		{ID: "a", Status: "ACTIVE"},
		{ID: "b", Status: "ACTIVE"},
	}, 7)

	remove := func(ctx context.Context, id string) error { return nil }

	c := New(Config[testRow]{Label: "Row", Fetch: fetch, Delete: remove})

	ctx := context.Background()
	c.Refresh(ctx)
	c.Delete(ctx, "a")

	s := c.Snapshot()
	if len(s.Items) != 1 || s.Items[0].ID != "b" {
		t.Errorf("Expected row a removed, got %+v", s.Items)
	}
	if s.Total != 6 {
		t.Errorf("Expected total decremented to 6, got %d", s.Total)
	}
	if s.DeletingID != "" {
		t.Errorf("Expected deleting id cleared, got %q", s.DeletingID)
	}
}

func TestController_FailedDeleteLeavesListUnchanged(t *testing.T) {
	fetch, _ := fixtureFetch([]testRow{{ID: "a", Status: "ACTIVE"}}, 1)

	remove := func(ctx context.Context, id string) error {
		return &client.APIError{StatusCode: 500, Message: "Failed to delete row"}
	}

	rec := &notify.Recorder{}
	c := New(Config[testRow]{Label: "Row", Fetch: fetch, Delete: remove, Notifier: rec})

	ctx := context.Background()
	c.Refresh(ctx)
	c.Delete(ctx, "a")

	s := c.Snapshot()
	if len(s.Items) != 1 || s.Total != 1 {
		t.Errorf("Expected list unchanged on failed delete, got %d items total=%d", len(s.Items), s.Total)
	}
	if last := rec.Last(); last.Kind != notify.KindError {
		t.Errorf("Expected error notification, got %+v", last)
	}
}

func TestState_TotalPages(t *testing.T) {
	s := State[testRow]{Total: 25, Limit: 10}
	if got := s.TotalPages(); got != 3 {
		t.Errorf("Expected ceil(25/10)=3 pages, got %d", got)
	}

	s = State[testRow]{Total: 0, Limit: 10}
	if got := s.TotalPages(); got != 0 {
		t.Errorf("Expected 0 pages for empty list, got %d", got)
	}
}
