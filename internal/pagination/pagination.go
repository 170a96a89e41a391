// Package pagination slices a sequence of results into fixed-size pages,
// grounded on paginator.h's IteratorRange/Paginator/Paginate trio.
package pagination

// Page is one contiguous slice of the paginated sequence.
type Page[T any] struct {
	items []T
}

// Items returns the page's elements.
func (p Page[T]) Items() []T {
	return p.items
}

// Len returns the number of elements on the page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// Paginator holds a sequence split into fixed-size pages, in order.
type Paginator[T any] struct {
	pages []Page[T]
}

// Paginate splits items into pages of at most pageSize elements each. A
// non-positive pageSize yields a single page containing everything. Empty
// items yields no pages at all.
func Paginate[T any](items []T, pageSize int) *Paginator[T] {
	if pageSize <= 0 {
		pageSize = len(items)
		if pageSize == 0 {
			return &Paginator[T]{}
		}
	}

	p := &Paginator[T]{}
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		p.pages = append(p.pages, Page[T]{items: items[start:end]})
	}
	return p
}

// Pages returns the paginator's pages, in order.
func (p *Paginator[T]) Pages() []Page[T] {
	return p.pages
}

// Len returns the number of pages.
func (p *Paginator[T]) Len() int {
	return len(p.pages)
}
