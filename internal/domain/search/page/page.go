package page

// DefaultSize is the number of cards per page when none is configured.
const DefaultSize = 5

// Page is the pagination window over a filtered card sequence.
type Page struct {
	num     int
	count   int
	perPage int
	total   int
}

// New computes the pagination window for total items.
// count is ceil(total/perPage). The requested page is clamped into
// [1, count]; with no items the page is 1 of 0.
func New(total, perPage, requested int) Page {
	if perPage <= 0 {
		perPage = DefaultSize
	}
	if total < 0 {
		total = 0
	}
	count := total / perPage
	if total%perPage != 0 {
		count++
	}

	num := requested
	if num > count {
		num = count
	}
	if num < 1 {
		num = 1
	}
	return Page{num: num, count: count, perPage: perPage, total: total}
}

// Num returns the 1-based current page number.
func (p Page) Num() int { return p.num }

// Count returns the total number of pages.
func (p Page) Count() int { return p.count }

// PerPage returns the page size.
func (p Page) PerPage() int { return p.perPage }

// Total returns the number of items across all pages.
func (p Page) Total() int { return p.total }

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.num > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.num < p.count }

// Bounds returns the half-open item index range of the current page.
func (p Page) Bounds() (start, end int) {
	start = (p.num - 1) * p.perPage
	if start > p.total {
		start = p.total
	}
	end = start + p.perPage
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Slice returns the items on page p.
func Slice[T any](items []T, p Page) []T {
	start, end := p.Bounds()
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return items[start:end]
}
