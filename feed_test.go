package portfolio

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/hsdev/portfolio/content"
)

func TestBuildFeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "https://example.com"
	cfg.Description = "Tips"
	posts := []content.Record{
		{Slug: "hooks", Title: "Hooks", Date: "2020-03-01", Tags: []string{"react"}, Excerpt: "short"},
		{Slug: "untitled", Date: "bad-date", GeneratedExcerpt: "auto"},
	}
	feed := buildFeed(cfg, posts)
	if feed.Version != "2.0" {
		t.Errorf("Version = %q", feed.Version)
	}
	items := feed.Channel.Items
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Link != "https://example.com/hooks/" || items[0].GUID != items[0].Link {
		t.Errorf("Link = %q, GUID = %q", items[0].Link, items[0].GUID)
	}
	if items[0].Description != "short" || !strings.HasPrefix(items[0].PubDate, "Sun, 01 Mar 2020") {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Title != "untitled" || items[1].PubDate != "" || items[1].Description != "auto" {
		t.Errorf("item 1 = %+v", items[1])
	}

	out, err := xml.Marshal(feed)
	if err != nil {
		t.Fatalf("xml.Marshal: %v", err)
	}
	if !strings.Contains(string(out), "<category>react</category>") {
		t.Errorf("missing category: %s", out)
	}
}

func TestBuildSitemap(t *testing.T) {
	recs := []content.Record{{Slug: "hooks", Date: "2020-03-01"}}
	sm := buildSitemap("https://example.com", recs, []string{"react"})
	want := []string{
		"https://example.com",
		"https://example.com/posts/",
		"https://example.com/projects/",
		"https://example.com/hooks/",
		"https://example.com/tags/react/",
	}
	if len(sm.URLs) != len(want) {
		t.Fatalf("got %d urls, want %d", len(sm.URLs), len(want))
	}
	for i, loc := range want {
		if sm.URLs[i].Loc != loc {
			t.Errorf("URLs[%d] = %q, want %q", i, sm.URLs[i].Loc, loc)
		}
	}
	if sm.URLs[3].LastMod != "2020-03-01" {
		t.Errorf("LastMod = %q", sm.URLs[3].LastMod)
	}
}
