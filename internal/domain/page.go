package domain

// MaxPage bounds the page number so the row offset always fits in an int.
const MaxPage = 1_000_000

// PaginationParams carries page/limit values from the HTTP layer to the
// booking ledger. Page is 1-indexed and capped at MaxPage. Limit is capped
// at 100 by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil or non-positive values fall back to page=1, limit=20.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window returns the [start, end) bounds of the page within a slice of
// length n, clamped so both are valid slice indexes.
func (p PaginationParams) Window(n int) (start, end int) {
	start = min(max(p.Offset(), 0), n)
	end = min(start+p.Limit, n)
	return start, end
}
