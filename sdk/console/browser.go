package console

import "context"

// BrowserState names the browser's lifecycle phase.
type BrowserState int

const (
	BrowserIdle BrowserState = iota
	BrowserLoading
	BrowserLoaded
	BrowserErrored
)

func (s BrowserState) String() string {
	switch s {
	case BrowserIdle:
		return "idle"
	case BrowserLoading:
		return "loading"
	case BrowserLoaded:
		return "loaded"
	case BrowserErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Sort directions cycle ascending → descending → cleared.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageFetcher loads one page for the browser. *Client.FetchPage,
// partially applied to a resource, satisfies it.
type PageFetcher func(ctx context.Context, q PageQuery) (Page, Result)

// Browser drives paginated, sortable, searchable listing of one
// resource. It is a single-goroutine state machine: all methods must be
// called from the same goroutine.
type Browser struct {
	fetch PageFetcher

	state   BrowserState
	query   PageQuery
	records []Record
	total   int
	message string

	// generation guards against stale responses: only the response to
	// the newest fetch may update the browser.
	generation uint64
}

// NewBrowser creates a browser over the given fetcher with the default
// first page.
func NewBrowser(fetch PageFetcher, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Browser{
		fetch: fetch,
		state: BrowserIdle,
		query: PageQuery{Page: 1, PageSize: pageSize},
	}
}

func (b *Browser) State() BrowserState { return b.state }
func (b *Browser) Records() []Record   { return b.records }
func (b *Browser) TotalCount() int     { return b.total }
func (b *Browser) Message() string     { return b.message }
func (b *Browser) Query() PageQuery    { return b.query }

// TotalPages is never below 1, even for an empty result set.
func (b *Browser) TotalPages() int {
	if b.query.PageSize <= 0 {
		return 1
	}
	pages := (b.total + b.query.PageSize - 1) / b.query.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Load fetches the current query. Every query mutation re-enters
// Loading through here.
func (b *Browser) Load(ctx context.Context) {
	b.generation++
	gen := b.generation
	b.state = BrowserLoading

	page, result := b.fetch(ctx, b.query)

	// A newer fetch superseded this one; discard the response.
	if gen != b.generation {
		return
	}

	if !result.Success {
		b.state = BrowserErrored
		b.message = result.Message
		return
	}

	b.records = page.Records
	b.total = page.TotalCount
	b.message = ""
	b.state = BrowserLoaded
}

// SetPage moves to a page, preserving sort and search.
func (b *Browser) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	b.query.Page = page
	b.Load(ctx)
}

// SetPageSize changes the page size and resets to the first page.
func (b *Browser) SetPageSize(ctx context.Context, size int) {
	if size < 1 {
		size = 1
	}
	b.query.PageSize = size
	b.query.Page = 1
	b.Load(ctx)
}

// SetSearch replaces the search text and resets to the first page.
func (b *Browser) SetSearch(ctx context.Context, text string) {
	b.query.Search = text
	b.query.Page = 1
	b.Load(ctx)
}

// SetStatusFilter narrows the listing to one status; nil clears the
// filter. Resets to the first page.
func (b *Browser) SetStatusFilter(ctx context.Context, statusID *int) {
	b.query.StatusID = statusID
	b.query.Page = 1
	b.Load(ctx)
}

// ToggleSort cycles the sort on a column: ascending, then descending,
// then cleared. Selecting a different column starts at ascending.
// The current page is preserved.
func (b *Browser) ToggleSort(ctx context.Context, column string) {
	switch {
	case b.query.SortColumn != column:
		b.query.SortColumn = column
		b.query.SortDirection = SortAsc
	case b.query.SortDirection == SortAsc:
		b.query.SortDirection = SortDesc
	default:
		b.query.SortColumn = ""
		b.query.SortDirection = ""
	}
	b.Load(ctx)
}

// RefreshRecord replaces the loaded row whose key field matches,
// letting a detail session push changes back into the page without a
// refetch.
func (b *Browser) RefreshRecord(keyField string, updated Record) bool {
	key, ok := updated[keyField]
	if !ok {
		return false
	}

	for i, rec := range b.records {
		if rec[keyField] == key {
			b.records[i] = updated
			return true
		}
	}
	return false
}
