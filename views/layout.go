package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/hsdev/portfolio/theme"
)

// Layout wraps body in the site chrome: head, nav bar with brand link,
// "All Posts" link and one theme toggle, and the main content slot.
// body is rendered as-is.
func Layout(c Chrome, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		dark := c.DarkMode()
		description := meta.Description
		if description == "" {
			description = c.Site.Description
		}

		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en" data-theme="`, string(theme.ModeOf(dark)), `"`)
		if dark {
			h.raw(` class="dark"`)
		}
		h.raw(`><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.raw(`<title>`, esc(ComposePageTitle(meta.Title, c.Site.Name)), `</title>`)
		if description != "" {
			h.raw(`<meta name="description" content="`, esc(description), `"/>`)
		}
		if c.Site.URL != "" {
			h.raw(`<link rel="canonical" href="`, esc(buildURL(c.Site.URL, meta.Path)), `"/>`)
		}
		h.raw(`<link rel="alternate" type="application/rss+xml" title="`, esc(c.Site.Name), `" href="/feed.xml"/>`)
		h.raw(`<style>`,
			theme.Resolve(false, c.Accent).CSS(":root"),
			theme.Resolve(true, c.Accent).CSS(":root.dark"),
			`</style>`)
		h.raw(`<link rel="stylesheet" href="`, esc(AssetURL("/public/site.css", c.AssetVersion)), `"/>`)
		h.raw(`<script src="`, esc(AssetURL("/public/toggle.js", c.AssetVersion)), `" defer></script>`)
		h.raw(`</head><body>`)

		h.raw(`<nav class="navbar"><div class="container"><div class="flex-space-between">`)
		h.raw(`<div><h1 class="brand"><a class="post-link" href="/">`, esc(c.Site.Name), `</a></h1></div>`)
		h.raw(`<div class="flex-space-between"><h3 class="nav-link"><a href="/posts/">All Posts</a></h3>`)
		if h.err != nil {
			return h.err
		}
		if err := DarkModeToggle(c.Theme, c.Accent, c.CSRFToken, c.ToggleAction).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</div></div></div></nav>`)

		h.raw(`<div class="container main"><main>`)
		if h.err != nil {
			return h.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</main></div></body></html>`)
		return h.err
	})
}
