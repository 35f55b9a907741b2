package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hsdev/portfolio/content"
)

// Index is the home page: latest posts, latest projects and the bio.
func Index(c Chrome, posts, projects []content.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h2 class="subheading">Latest Posts</h2>`)
		for _, p := range posts {
			writeArticle(h, p, p.Body(), true)
		}
		h.raw(`<div class="projects-teaser"><h2 class="subheading">Projects</h2>`)
		for _, p := range projects {
			h.raw(`<h3 class="post-heading"><a class="post-link" href="`, esc(p.Link()), `">`)
			h.text(p.DisplayTitle())
			h.raw(`</a></h3>`)
			if s := p.Summary(); s != "" {
				h.raw(`<p>`, s, `</p>`)
			}
		}
		h.raw(`</div><hr/>`)
		writeBio(h, c.Site)
		return h.err
	})
	return Layout(c, PageMeta{Title: c.Site.Description, Path: "/"}, body)
}

// Posts lists every post with tags and body text.
func Posts(c Chrome, posts []content.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h2 class="subheading">All Posts</h2>`)
		for _, p := range posts {
			writeArticle(h, p, p.Body(), true)
		}
		return h.err
	})
	return Layout(c, PageMeta{Title: "All Posts", Path: "/posts/"}, body)
}

// Tags is the archive for one tag. posts is already filtered to the tag.
func Tags(c Chrome, tag string, posts []content.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div><h2 class="subheading">`)
		h.text(TagHeader(len(posts), tag))
		h.raw(`</h2><div>`)
		for _, p := range posts {
			h.raw(`<article class="tag-entry"><h3 class="post-heading"><a class="post-link" href="`, esc(p.Link()), `">`)
			h.text(p.DisplayTitle())
			h.raw(`</a></h3><small class="date">`)
			h.text(FormatDate(p.Date))
			h.raw(`</small></article>`)
		}
		h.raw(`</div></div>`)
		return h.err
	})
	return Layout(c, PageMeta{Title: "Posts tagged: " + tag, Path: TagLink(tag)}, body)
}

// Projects lists projects; the body prefers the description.
func Projects(c Chrome, projects []content.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h2 class="subheading">All Projects</h2>`)
		for _, p := range projects {
			writeArticle(h, p, p.Summary(), false)
		}
		return h.err
	})
	return Layout(c, PageMeta{Title: "All Projects", Path: "/projects/"}, body)
}

// Project is the detail page for a project record.
func Project(c Chrome, p content.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<article class="project"><header><h1 class="project-title">`)
		h.text(p.DisplayTitle())
		h.raw(`</h1>`)
		if p.Description != "" {
			h.raw(`<p class="project-description">`)
			h.text(p.Description)
			h.raw(`</p>`)
		}
		if p.Programming != "" {
			h.raw(`<p class="project-programming">`)
			h.text(p.Programming)
			h.raw(`</p>`)
		}
		h.raw(`</header><section>`, p.HTML, `</section><hr/><footer class="footer">`)
		writeBio(h, c.Site)
		h.raw(`</footer></article>`)
		return h.err
	})
	return Layout(c, PageMeta{Title: p.DisplayTitle(), Description: p.Summary(), Path: p.Link()}, body)
}

// Post is the detail page for a post record.
func Post(c Chrome, p content.Record) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<article class="post"><header><h1 class="post-title">`)
		h.text(p.DisplayTitle())
		h.raw(`</h1>`)
		writeMeta(h, p, true)
		h.raw(`</header><section>`, p.HTML, `</section><hr/><footer class="footer">`)
		writeBio(h, c.Site)
		h.raw(`</footer></article>`)
		return h.err
	})
	return Layout(c, PageMeta{Title: p.DisplayTitle(), Description: p.Body(), Path: p.Link()}, body)
}

// NotFound is rendered for unknown paths and slugs.
func NotFound(c Chrome) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h2 class="subheading">Not found</h2><p>That page does not exist. <a class="post-link" href="/">Back home</a>.</p>`)
		return h.err
	})
	return Layout(c, PageMeta{Title: "Not found"}, body)
}

// ServerError is rendered for unexpected failures.
func ServerError(c Chrome) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h2 class="subheading">Something went wrong</h2><p>Please try again later.</p>`)
		return h.err
	})
	return Layout(c, PageMeta{Title: "Error"}, body)
}

// writeArticle renders one listing block. bodyHTML is pre-sanitized.
func writeArticle(h *htmlWriter, p content.Record, bodyHTML string, withTags bool) {
	h.raw(`<article><header><h3 class="post-heading"><a class="post-link" href="`, esc(p.Link()), `">`)
	h.text(p.DisplayTitle())
	h.raw(`</a></h3>`)
	writeMeta(h, p, withTags)
	h.raw(`</header><section><p>`, bodyHTML, `</p></section></article>`)
}

func writeMeta(h *htmlWriter, p content.Record, withTags bool) {
	h.raw(`<div class="flex"><small class="date">`)
	h.text(FormatDate(p.Date))
	h.raw(`</small>`)
	if withTags && p.HasTags() {
		for _, t := range p.Tags {
			if strings.TrimSpace(t) == "" {
				continue
			}
			h.raw(`<a class="tags" href="`, esc(TagLink(t)), `">`)
			h.text(t)
			h.raw(`</a>`)
		}
	}
	h.raw(`</div>`)
}

func writeBio(h *htmlWriter, site SiteConfig) {
	if site.Author == "" && site.Bio == "" {
		return
	}
	h.raw(`<div class="bio"><p>`)
	if site.Author != "" {
		h.raw(`Written by <strong>`)
		h.text(site.Author)
		h.raw(`</strong>. `)
	}
	h.text(site.Bio)
	h.raw(`</p></div>`)
}
