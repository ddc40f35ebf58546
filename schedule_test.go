package folio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestScheduledMargin(t *testing.T) {
	s := Default().Site
	if got := s.ScheduledMargin(); got != 15*time.Minute {
		t.Errorf("ScheduledMargin = %v, want 15m", got)
	}
}

func TestIsScheduled(t *testing.T) {
	s := Default().Site
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		pub  time.Time
		want bool
	}{
		{"past", now.Add(-time.Hour), false},
		{"now", now, false},
		{"inside margin", now.Add(10 * time.Minute), false},
		{"at margin", now.Add(15 * time.Minute), true},
		{"beyond margin", now.Add(20 * time.Minute), true},
	}
	for _, tt := range tests {
		if got := s.IsScheduled(tt.pub, now); got != tt.want {
			t.Errorf("%s: IsScheduled = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsScheduledZeroMargin(t *testing.T) {
	s := SiteConfig{ScheduledPostMargin: 0}
	now := time.Now()
	if !s.IsScheduled(now.Add(time.Second), now) {
		t.Error("future post should be scheduled with zero margin")
	}
	if !s.IsScheduled(now, now) {
		t.Error("pub == now should count as scheduled with zero margin")
	}
}

type post struct {
	slug string
	pub  time.Time
}

func TestFilterPublished(t *testing.T) {
	s := Default().Site
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []post{
		{"a", now.Add(-48 * time.Hour)},
		{"b", now.Add(time.Hour)},
		{"c", now.Add(5 * time.Minute)},
		{"d", now.Add(-time.Minute)},
	}

	got := FilterPublished(s, posts, func(p post) time.Time { return p.pub }, now)
	var slugs []string
	for _, p := range got {
		slugs = append(slugs, p.slug)
	}
	if diff := cmp.Diff([]string{"a", "c", "d"}, slugs); diff != "" {
		t.Errorf("published mismatch (-want +got):\n%s", diff)
	}
}

func TestPaginate(t *testing.T) {
	s := Default().Site // 20 per page
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	p1, err := Paginate(s, items, 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(p1.Items) != 20 || p1.Items[0] != 0 || p1.Total != 3 {
		t.Errorf("page 1 = %d items from %d, total %d", len(p1.Items), p1.Items[0], p1.Total)
	}
	if p1.HasPrev() || !p1.HasNext() {
		t.Errorf("page 1 prev/next = %v/%v", p1.HasPrev(), p1.HasNext())
	}

	p3, err := Paginate(s, items, 3)
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if diff := cmp.Diff([]int{40, 41, 42, 43, 44}, p3.Items); diff != "" {
		t.Errorf("page 3 mismatch (-want +got):\n%s", diff)
	}
	if !p3.HasPrev() || p3.HasNext() {
		t.Errorf("page 3 prev/next = %v/%v", p3.HasPrev(), p3.HasNext())
	}

	for _, n := range []int{0, -1, 4} {
		if _, err := Paginate(s, items, n); !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("page %d: err = %v, want ErrPageOutOfRange", n, err)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	p, err := Paginate(Default().Site, []string{}, 1)
	if err != nil {
		t.Fatalf("empty page 1: %v", err)
	}
	if len(p.Items) != 0 || p.Total != 1 {
		t.Errorf("empty listing = %d items, %d pages", len(p.Items), p.Total)
	}
}

func TestPaginateDoesNotAliasAppend(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}
	p, _ := Paginate(SiteConfig{PostPerPage: 2}, items, 1)
	_ = append(p.Items, 99)
	if items[2] != 2 {
		t.Errorf("append through page mutated source: %v", items)
	}
}

func TestPageBounds(t *testing.T) {
	s := SiteConfig{PostPerPage: 10}
	start, end, err := s.PageBounds(25, 3)
	if err != nil || start != 20 || end != 25 {
		t.Errorf("PageBounds(25, 3) = %d, %d, %v", start, end, err)
	}
	if got := s.PageCount(30); got != 3 {
		t.Errorf("PageCount(30) = %d", got)
	}
	if got := s.PageCount(0); got != 1 {
		t.Errorf("PageCount(0) = %d", got)
	}
}

func TestPageBoundsLargeListing(t *testing.T) {
	s := SiteConfig{PostPerPage: 20}
	pages := s.PageCount(math.MaxInt)
	if want := math.MaxInt/20 + 1; pages != want {
		t.Fatalf("PageCount(MaxInt) = %d, want %d", pages, want)
	}
	if start, end, err := s.PageBounds(math.MaxInt, 1); err != nil || start != 0 || end != 20 {
		t.Errorf("first page = %d, %d, %v", start, end, err)
	}
	start, end, err := s.PageBounds(math.MaxInt, pages)
	if err != nil || end != math.MaxInt || start != (pages-1)*20 {
		t.Errorf("last page = %d, %d, %v", start, end, err)
	}
}
