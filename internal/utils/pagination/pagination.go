// Package pagination clamps page parameters into the ranges the store's
// listing procedures accept. Out-of-range inputs are corrected silently,
// never rejected.
package pagination

const (
	MinPage         = 1
	MinPageSize     = 1
	MaxPageSize     = 200
	DefaultPageSize = 50
)

// Clamp normalizes a page number and page size. A page below 1 becomes 1;
// the size is clamped into [MinPageSize, MaxPageSize]. The default size is
// applied at request binding, not here.
func Clamp(page, pageSize int) (int, int) {
	if page < MinPage {
		page = MinPage
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
