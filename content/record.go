// Package content defines the record type that page renderers consume.
//
// Records arrive already filtered, sorted and limited by the query layer;
// nothing in this package selects or orders them.
package content

import "strings"

// Kind distinguishes the page template a record is rendered with.
type Kind string

const (
	KindPost    Kind = "post"
	KindProject Kind = "project"
)

// ParseKind maps a stored template name onto a Kind, defaulting to KindPost.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindProject:
		return KindProject
	default:
		return KindPost
	}
}

// Record is a single post or project as handed to the views.
type Record struct {
	Slug  string
	Title string
	Date  string // YYYY-MM-DD
	Tags  []string
	Kind  Kind

	// Optional body sources, in fallback order.
	Excerpt          string
	Description      string
	GeneratedExcerpt string

	HTML        string // pre-sanitized body
	Programming string // languages/stack line for projects
}

// Body returns the listing text: Excerpt, then Description, then the
// generated excerpt. All absent yields "".
func (r Record) Body() string {
	switch {
	case r.Excerpt != "":
		return r.Excerpt
	case r.Description != "":
		return r.Description
	default:
		return r.GeneratedExcerpt
	}
}

// Summary is the project listing text: Description, then the generated excerpt.
func (r Record) Summary() string {
	if r.Description != "" {
		return r.Description
	}
	return r.GeneratedExcerpt
}

// DisplayTitle falls back to the slug when the title is blank.
func (r Record) DisplayTitle() string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	return r.Slug
}

// Link is the site-relative path of the record's detail page.
func (r Record) Link() string {
	return "/" + strings.Trim(r.Slug, "/") + "/"
}

// HasTags reports whether any non-blank tag is present.
func (r Record) HasTags() bool {
	for _, t := range r.Tags {
		if strings.TrimSpace(t) != "" {
			return true
		}
	}
	return false
}
