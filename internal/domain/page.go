package domain

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
	MaxPageNumber   = 100_000
)

// Page selects a zero-based page of a listing.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps raw query values into a usable page.
func NewPage(number, size int) Page {
	if number < 0 {
		number = 0
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// PostPage is one page of post summaries plus the total count of matches.
type PostPage struct {
	Total    int
	Page     int
	PageSize int
	Posts    []PostSummary
}
