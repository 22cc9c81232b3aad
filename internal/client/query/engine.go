package query

import (
	"iter"
	"slices"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
)

// DefaultPageSize is the number of entries on one page.
const DefaultPageSize = 9

// View is the ordered result of one evaluation. It holds no iteration
// state: every call to All or Page starts from the beginning.
type View struct {
	entries []models.Entry
}

// Evaluate filters entries by c in one pass and orders the survivors by
// OccurredAt descending. Entries with equal timestamps keep their input
// order. The input slice is not modified.
func Evaluate(entries []models.Entry, c Criteria) View {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if Match(e, c) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Entry) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	return View{entries: out}
}

// Len is the number of matching entries.
func (v View) Len() int { return len(v.entries) }

// All yields every matching entry in order.
func (v View) All() iter.Seq[models.Entry] {
	return func(yield func(models.Entry) bool) {
		for _, e := range v.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Page returns the n-th page (1-based) of the given size. Pages before the
// first or after the last are empty. A size below 1 uses DefaultPageSize.
func (v View) Page(n, size int) []models.Entry {
	if size < 1 {
		size = DefaultPageSize
	}
	// Compare page counts before multiplying so a huge n cannot overflow.
	if n < 1 || n-1 >= pageCount(len(v.entries), size) {
		return []models.Entry{}
	}
	start := (n - 1) * size
	end := start + min(size, len(v.entries)-start)
	return slices.Clone(v.entries[start:end])
}

// TotalPages is the number of pages of the given size, never less than 1.
func (v View) TotalPages(size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	return max(1, pageCount(len(v.entries), size))
}

func pageCount(total, size int) int {
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}
