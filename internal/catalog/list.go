package catalog

import (
	"github.com/google/uuid"
	"github.com/mmcdole/champdex/internal/domain"
)

// ListState is the list screen's loading state
type ListState int

const (
	ListInitializing ListState = iota
	ListLoading                // first page in flight
	ListReady
	ListLoadingMore // a later page in flight
)

func (s ListState) String() string {
	switch s {
	case ListInitializing:
		return "initializing"
	case ListLoading:
		return "loading"
	case ListReady:
		return "ready"
	case ListLoadingMore:
		return "loading-more"
	default:
		return "unknown"
	}
}

// PageRequest identifies one in-flight page fetch
type PageRequest struct {
	Session uuid.UUID
	Cursor  PageCursor
}

// PageResult is what a page fetch reports back
type PageResult struct {
	Request PageRequest
	Entries []domain.Champion
	Total   int
	Err     error
}

// ListFlow is the list screen's state machine. It owns the loaded entries
// and allows one page fetch in flight at a time.
//
// ListFlow is not safe for concurrent use; it is driven from the UI loop.
type ListFlow struct {
	state   ListState
	session uuid.UUID

	cursor  PageCursor   // last page applied
	pending *PageRequest // nil when idle

	firstDone bool
	total     int // -1 until a page has been applied

	entries []domain.Champion
	seen    map[string]struct{}
}

// NewListFlow creates a flow for pages of pageSize entries
func NewListFlow(pageSize int) *ListFlow {
	if pageSize < 1 {
		pageSize = 1
	}
	return &ListFlow{
		state:   ListInitializing,
		session: uuid.New(),
		cursor:  PageCursor{Page: 0, Size: pageSize},
		total:   -1,
		seen:    make(map[string]struct{}),
	}
}

func (f *ListFlow) State() ListState {
	return f.state
}

// Session tags every request of this flow; results from another session are dropped
func (f *ListFlow) Session() uuid.UUID {
	return f.session
}

// Entries returns the loaded entries in load order. Callers must not modify it.
func (f *ListFlow) Entries() []domain.Champion {
	return f.entries
}

func (f *ListFlow) Len() int {
	return len(f.entries)
}

// Page returns the last page applied (0 before the first one)
func (f *ListFlow) Page() int {
	return f.cursor.Page
}

func (f *ListFlow) PageSize() int {
	return f.cursor.Size
}

// Total returns the catalog size once known
func (f *ListFlow) Total() (int, bool) {
	return f.total, f.total >= 0
}

// Exhausted reports whether every catalog entry has been loaded
func (f *ListFlow) Exhausted() bool {
	return f.total >= 0 && len(f.entries) >= f.total
}

// IsLoading reports whether any page is in flight
func (f *ListFlow) IsLoading() bool {
	return f.pending != nil
}

// FirstLoadDone reports whether the first page fetch has finished, successfully or not
func (f *ListFlow) FirstLoadDone() bool {
	return f.firstDone
}

// BeginFirstLoad moves Initializing -> Loading and returns the page-1 request.
// It only succeeds once.
func (f *ListFlow) BeginFirstLoad() (PageRequest, bool) {
	if f.state != ListInitializing {
		return PageRequest{}, false
	}
	f.state = ListLoading
	return f.request(), true
}

// BeginLoadMore asks for the next page. It is a no-op while any page is in
// flight, before the first load has finished, or once the catalog is exhausted,
// so it is safe to call on every scroll event.
func (f *ListFlow) BeginLoadMore() (PageRequest, bool) {
	if f.state != ListReady || !f.firstDone || f.Exhausted() {
		return PageRequest{}, false
	}
	f.state = ListLoadingMore
	return f.request(), true
}

func (f *ListFlow) request() PageRequest {
	req := PageRequest{Session: f.session, Cursor: f.cursor.Next()}
	f.pending = &req
	return req
}

// Complete records the outcome of the pending request and returns to Ready.
// A failed fetch keeps what is already loaded and leaves the cursor in place.
// Results that don't match the pending request are discarded (returns false).
func (f *ListFlow) Complete(res PageResult) bool {
	if f.pending == nil || res.Request != *f.pending {
		return false
	}
	f.pending = nil
	f.firstDone = true
	f.state = ListReady

	if res.Err != nil {
		return true
	}

	for _, c := range res.Entries {
		if _, dup := f.seen[c.ID]; dup {
			continue
		}
		f.seen[c.ID] = struct{}{}
		f.entries = append(f.entries, c)
	}
	f.cursor = res.Request.Cursor
	f.total = res.Total
	return true
}
