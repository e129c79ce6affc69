// Package paging converts 1-based page numbers into item positions.
package paging

// StartIndex returns the 1-based position of the first item on page.
func StartIndex(page, size int) int {
	return (page-1)*size + 1
}

// EndIndex returns the 1-based position of the last item on page.
func EndIndex(page, size int) int {
	return StartIndex(page, size) + size - 1
}

// Offset returns the 0-based offset of the first item on page.
func Offset(page, size int) int {
	return (page - 1) * size
}

// Pages returns the number of pages needed for total items.
func Pages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return total/size + min(total%size, 1)
}

// Slice returns the items on page. Pages outside the data, and page or size
// below one, yield an empty result.
func Slice[S ~[]E, E any](items S, page, size int) S {
	if page < 1 || size < 1 {
		return S{}
	}
	if page-1 >= Pages(len(items), size) {
		return S{}
	}
	start := Offset(page, size)
	end := start + min(size, len(items)-start)
	return items[start:end:end]
}
