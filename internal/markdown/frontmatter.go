package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// PostMatter is the YAML frontmatter accepted at the top of a post file.
type PostMatter struct {
	Title   string    `yaml:"title"`
	Slug    string    `yaml:"slug"`
	Summary string    `yaml:"summary"`
	Author  string    `yaml:"author"`
	Date    time.Time `yaml:"date"`
	Tags    []string  `yaml:"tags"`
	Draft   bool      `yaml:"draft"`
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. The returned body has the frontmatter delimiters stripped.
func ParseFrontMatter(source []byte) (PostMatter, []byte, error) {
	var meta PostMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return PostMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
