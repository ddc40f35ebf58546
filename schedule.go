package folio

import (
	"errors"
	"time"
)

// ErrPageOutOfRange is returned by Paginate for a page number outside
// 1..Total.
var ErrPageOutOfRange = errors.New("folio: page out of range")

// ScheduledMargin returns ScheduledPostMargin as a duration.
func (s SiteConfig) ScheduledMargin() time.Duration {
	return time.Duration(s.ScheduledPostMargin) * time.Millisecond
}

// IsScheduled reports whether a post published at pub is still scheduled
// at now: its timestamp lies at least ScheduledMargin in the future. A post
// inside the margin already counts as published.
func (s SiteConfig) IsScheduled(pub, now time.Time) bool {
	return pub.Sub(now) >= s.ScheduledMargin()
}

// FilterPublished keeps the items whose publish time is not scheduled
// relative to now. Order is preserved.
func FilterPublished[T any](site SiteConfig, items []T, pubTime func(T) time.Time, now time.Time) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !site.IsScheduled(pubTime(it), now) {
			out = append(out, it)
		}
	}
	return out
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items  []T
	Number int // 1-based
	Total  int // number of pages, at least 1
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.Total }

// PageCount returns how many pages n items fill at PostPerPage per page.
// An empty listing still has one (empty) page.
func (s SiteConfig) PageCount(n int) int {
	if n <= 0 || s.PostPerPage <= 0 {
		return 1
	}
	pages := n / s.PostPerPage
	if n%s.PostPerPage != 0 {
		pages++
	}
	return pages
}

// PageBounds returns the half-open index range [start, end) of page number
// (1-based) in a listing of n items.
func (s SiteConfig) PageBounds(n, number int) (start, end int, err error) {
	if number < 1 || number > s.PageCount(n) {
		return 0, 0, ErrPageOutOfRange
	}
	if n <= 0 || s.PostPerPage <= 0 {
		return 0, 0, nil
	}
	start = (number - 1) * s.PostPerPage
	end = start + min(s.PostPerPage, n-start)
	return start, end, nil
}

// Paginate returns page number (1-based) of items using site.PostPerPage.
func Paginate[T any](site SiteConfig, items []T, number int) (Page[T], error) {
	start, end, err := site.PageBounds(len(items), number)
	if err != nil {
		return Page[T]{}, err
	}
	return Page[T]{
		Items:  items[start:end:end],
		Number: number,
		Total:  site.PageCount(len(items)),
	}, nil
}
