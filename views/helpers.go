package views

import (
	"html"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape for use in hrefs.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// TagLink is the archive path for a tag.
func TagLink(tag string) string {
	return "/tags/" + PathEscape(strings.TrimSpace(tag)) + "/"
}

// AssetURL appends a cache-busting version to an asset path.
func AssetURL(path, version string) string {
	if version == "" {
		return path
	}
	return path + "?v=" + url.QueryEscape(version)
}

// TagHeader formats the tag archive heading, e.g. "2 posts tagged: go".
func TagHeader(count int, tag string) string {
	noun := "posts"
	if count == 1 {
		noun = "post"
	}
	return strconv.Itoa(count) + " " + noun + " tagged: " + tag
}

// FormatDate renders a YYYY-MM-DD date as "January 02, 2006".
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}

// ComposePageTitle appends the site name unless the title already ends with it.
func ComposePageTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return siteName
	case siteName == "" || strings.HasSuffix(title, "| "+siteName):
		return title
	default:
		return title + " | " + siteName
	}
}

func esc(s string) string {
	return html.EscapeString(s)
}

// htmlWriter accumulates the first write error so component bodies can
// stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(esc(s))
}
