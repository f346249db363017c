package entity

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NewPage normalises a page request: numbers below 1 become 1 and sizes are
// clamped to (0, MaxPageSize].
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{Number: number, Size: size}
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Pagination describes a page of results.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination builds the pagination block for total matching rows.
func NewPagination(p Page, total int64) Pagination {
	pages := total / int64(p.Size)
	if total%int64(p.Size) != 0 {
		pages++
	}

	return Pagination{Page: p.Number, Limit: p.Size, Total: total, Pages: pages}
}
