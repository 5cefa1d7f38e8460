// Package pagination slices ordered listings into fixed-size pages.
package pagination

// DefaultPageSize is the number of posts per listing page unless overridden
// by configuration.
const DefaultPageSize = 10

// Page describes one slice of an ordered listing. It is returned alongside
// the items so clients can render pager controls without a second query.
type Page struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// New computes page metadata for a listing of total items with perPage items
// per page. A requested page below 1 becomes 1; a requested page beyond the
// last page clamps to the last page rather than erroring, so stale pager
// links keep working after posts age out. An empty listing yields page 1
// with zero pages.
func New(total int64, requested, perPage int) Page {
	if perPage < 1 {
		perPage = DefaultPageSize
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	page := requested
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return Page{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && totalPages > 0,
	}
}

// Offset is the SQL offset of the first item on this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Limit is the maximum number of items on this page.
func (p Page) Limit() int {
	return p.PerPage
}

// ItemsOn returns how many items a valid page k holds in a listing of total
// items: perPage everywhere except a shorter final page.
func (p Page) ItemsOn() int {
	if p.TotalPages == 0 {
		return 0
	}
	if p.Page < p.TotalPages {
		return p.PerPage
	}
	rem := int(p.TotalItems - int64(p.TotalPages-1)*int64(p.PerPage))
	return rem
}
