package models

import "time"

// Post is a blog article after frontmatter extraction and markdown rendering.
type Post struct {
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Summary string    `json:"summary,omitempty"`
	Author  string    `json:"author,omitempty"`
	Date    time.Time `json:"date"`
	Tags    []string  `json:"tags,omitempty"`
	Draft   bool      `json:"-"`

	// HTML is the rendered article body. Excluded from API payloads, which
	// carry metadata only.
	HTML string `json:"-"`
}
