package portfolio

import (
	"errors"
	"testing"
	"time"

	"github.com/hsdev/portfolio/content"
)

func seedRecords(t *testing.T, s *Store) {
	t.Helper()
	recs := []content.Record{
		{Slug: "hooks", Title: "Hooks", Date: "2020-03-01", Tags: []string{"react", "javascript"}},
		{Slug: "closures", Title: "Closures", Date: "2019-11-12", Tags: []string{"javascript"}},
		{Slug: "css-grid", Title: "CSS Grid", Date: "2019-05-02", Tags: []string{"css"}},
		{Slug: "synth", Title: "Synth", Date: "2020-01-10", Kind: content.KindProject, Description: "A synth"},
		{Slug: "weather", Title: "Weather", Date: "2018-07-07", Kind: content.KindProject},
	}
	if err := s.ReplaceAll(recs); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
}

func TestRecordCacheListByKind(t *testing.T) {
	s := setupTestStore(t)
	seedRecords(t, s)
	c := NewRecordCache(s, time.Minute)

	posts, err := c.List(Query{Kind: content.KindPost})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 || posts[0].Slug != "hooks" {
		t.Errorf("posts = %v, want 3 starting with hooks", slugs(posts))
	}

	projects, err := c.List(Query{Kind: content.KindProject, Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Slug != "synth" {
		t.Errorf("projects = %v, want [synth]", slugs(projects))
	}
}

func TestRecordCacheListByTag(t *testing.T) {
	s := setupTestStore(t)
	seedRecords(t, s)
	c := NewRecordCache(s, time.Minute)

	got, err := c.List(Query{Kind: content.KindPost, Tag: " JavaScript "})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "hooks" || got[1].Slug != "closures" {
		t.Errorf("tagged = %v, want [hooks closures]", slugs(got))
	}

	none, err := c.List(Query{Tag: "rust"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no records, got %v", slugs(none))
	}
}

func TestRecordCacheEmptyStore(t *testing.T) {
	c := NewRecordCache(setupTestStore(t), time.Minute)
	got, err := c.List(Query{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected zero records, got %d", len(got))
	}
	if !c.valid() {
		t.Error("an empty load should still be cached")
	}
}

func TestRecordCacheGet(t *testing.T) {
	s := setupTestStore(t)
	seedRecords(t, s)
	c := NewRecordCache(s, time.Minute)

	got, err := c.Get("/synth/")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Kind != content.KindProject {
		t.Errorf("Kind = %q, want project", got.Kind)
	}
	if _, err := c.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordCacheInvalidate(t *testing.T) {
	s := setupTestStore(t)
	c := NewRecordCache(s, time.Hour)

	if got, _ := c.List(Query{}); len(got) != 0 {
		t.Fatalf("expected empty cache, got %d", len(got))
	}
	seedRecords(t, s)
	if got, _ := c.List(Query{}); len(got) != 0 {
		t.Errorf("cache should serve stale data until invalidated, got %d", len(got))
	}
	c.Invalidate()
	if got, _ := c.List(Query{}); len(got) != 5 {
		t.Errorf("after Invalidate got %d records, want 5", len(got))
	}
}

func TestRecordCacheTags(t *testing.T) {
	s := setupTestStore(t)
	seedRecords(t, s)
	tags, err := NewRecordCache(s, time.Minute).ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	want := []string{"css", "javascript", "react"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func slugs(recs []content.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Slug
	}
	return out
}
