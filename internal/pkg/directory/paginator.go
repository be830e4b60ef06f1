package directory

// Page is one slice of a filtered directory.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	Size        int  `json:"size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// TotalPages is ceil(total/size); zero when there is nothing to show.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage keeps page inside [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns page number page of items. Out of range pages are clamped.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = PageSize
	}
	totalPages := TotalPages(len(items), size)
	page = ClampPage(page, totalPages)

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      page,
		Size:        size,
		TotalItems:  len(items),
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// PageLink is one entry in the page-number strip.
type PageLink struct {
	Number   int  `json:"number,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// windowFallback is the largest page count rendered without ellipses.
const windowFallback = 5

// Window lists the page-number buttons for current out of total: every page
// when total is small, otherwise the first, the last and current±1 with an
// ellipsis where a gap starts.
func Window(current, total int) []PageLink {
	if total <= 0 {
		return nil
	}
	current = ClampPage(current, total)

	links := make([]PageLink, 0, total)
	if total <= windowFallback {
		for n := 1; n <= total; n++ {
			links = append(links, PageLink{Number: n, Current: n == current})
		}
		return links
	}

	for n := 1; n <= total; n++ {
		switch {
		case n == 1 || n == total || (n >= current-1 && n <= current+1):
			links = append(links, PageLink{Number: n, Current: n == current})
		case n == current-2 || n == current+2:
			links = append(links, PageLink{Ellipsis: true})
		}
	}
	return links
}
