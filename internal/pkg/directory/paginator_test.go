package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("Twenty five records make three pages", func(t *testing.T) {
		items := numbers(25)

		first := Paginate(items, 1, PageSize)
		assert.Len(t, first.Items, 12)
		assert.Equal(t, 3, first.TotalPages)
		assert.False(t, first.HasPrevious)
		assert.True(t, first.HasNext)

		last := Paginate(items, 3, PageSize)
		assert.Equal(t, []int{25}, last.Items)
		assert.True(t, last.HasPrevious)
		assert.False(t, last.HasNext)
	})

	t.Run("Pages cover every record exactly once", func(t *testing.T) {
		for _, total := range []int{0, 1, 11, 12, 13, 24, 25, 100} {
			items := numbers(total)
			pages := TotalPages(total, PageSize)

			var seen []int
			for p := 1; p <= pages; p++ {
				page := Paginate(items, p, PageSize)
				if p < pages {
					assert.Len(t, page.Items, PageSize)
				} else {
					assert.Len(t, page.Items, total-PageSize*(pages-1))
				}
				seen = append(seen, page.Items...)
			}
			assert.Equal(t, items, append([]int{}, seen...), "total=%d", total)
		}
	})

	t.Run("Out of range pages are clamped", func(t *testing.T) {
		items := numbers(25)
		assert.Equal(t, 1, Paginate(items, 0, PageSize).Number)
		assert.Equal(t, 1, Paginate(items, -4, PageSize).Number)
		assert.Equal(t, 3, Paginate(items, 9, PageSize).Number)
	})

	t.Run("Empty list has no pages and no navigation", func(t *testing.T) {
		page := Paginate([]int{}, 1, PageSize)
		assert.Equal(t, 0, page.TotalPages)
		assert.Equal(t, 1, page.Number)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasPrevious)
		assert.False(t, page.HasNext)
	})
}

func TestWindow(t *testing.T) {
	render := func(links []PageLink) []int {
		out := make([]int, 0, len(links))
		for _, link := range links {
			if link.Ellipsis {
				out = append(out, 0)
				continue
			}
			out = append(out, link.Number)
		}
		return out
	}

	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"nothing to show", 1, 0, []int{}},
		{"single page", 1, 1, []int{1}},
		{"small total shows everything", 3, 5, []int{1, 2, 3, 4, 5}},
		{"first page of many", 1, 8, []int{1, 2, 0, 8}},
		{"middle page of many", 5, 10, []int{1, 0, 4, 5, 6, 0, 10}},
		{"near the start", 3, 10, []int{1, 2, 3, 4, 0, 10}},
		{"last page of many", 10, 10, []int{1, 0, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(Window(tt.current, tt.total)))
		})
	}

	t.Run("Current page is flagged", func(t *testing.T) {
		for _, link := range Window(4, 9) {
			assert.Equal(t, link.Number == 4, link.Current)
		}
	})
}
