package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-slug"

	"jmorrow.dev/internal/markdown"
	"jmorrow.dev/internal/models"
)

// PostService serves blog posts loaded from a content directory.
type PostService struct {
	posts  []models.Post
	bySlug map[string]*models.Post
}

// LoadPosts reads every .md file under dir, parses frontmatter, and renders
// the body to HTML. Posts are ordered newest first. Drafts are skipped unless
// includeDrafts is set. A post without a title fails the load.
func LoadPosts(dir string, includeDrafts bool, log glog.Logger) (*PostService, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	renderer := markdown.NewRenderer()
	var posts []models.Post

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}

		source, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read post %s: %w", name, err)
		}

		post, err := buildPost(name, source, renderer)
		if err != nil {
			return nil, err
		}

		if post.Draft && !includeDrafts {
			if log != nil {
				log.Debug("skipping draft", "post", post.Slug)
			}
			continue
		}

		posts = append(posts, post)
	}

	// Newest first; ties keep directory order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	bySlug := make(map[string]*models.Post, len(posts))
	for i := range posts {
		if _, dup := bySlug[posts[i].Slug]; dup {
			return nil, fmt.Errorf("duplicate post slug: %s", posts[i].Slug)
		}
		bySlug[posts[i].Slug] = &posts[i]
	}

	return &PostService{posts: posts, bySlug: bySlug}, nil
}

// buildPost parses one markdown file into a Post. The slug comes from the
// frontmatter when present, otherwise from the filename.
func buildPost(filename string, source []byte, renderer *markdown.Renderer) (models.Post, error) {
	meta, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return models.Post{}, fmt.Errorf("post %s: %w", filename, err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return models.Post{}, fmt.Errorf("post %s: title is required", filename)
	}

	postSlug := strings.TrimSpace(meta.Slug)
	if postSlug == "" {
		base := strings.TrimSuffix(filename, ".md")
		postSlug, err = slug.Normalize(base)
		if err != nil {
			return models.Post{}, fmt.Errorf("post %s: slug: %w", filename, err)
		}
	}

	html, err := renderer.Render(body)
	if err != nil {
		return models.Post{}, fmt.Errorf("post %s: %w", filename, err)
	}

	return models.Post{
		Slug:    postSlug,
		Title:   meta.Title,
		Summary: meta.Summary,
		Author:  meta.Author,
		Date:    meta.Date,
		Tags:    meta.Tags,
		Draft:   meta.Draft,
		HTML:    string(html),
	}, nil
}

// All returns the published posts, newest first.
func (s *PostService) All() []models.Post {
	return s.posts
}

// BySlug returns the post with the given slug.
func (s *PostService) BySlug(slug string) (*models.Post, error) {
	if post, ok := s.bySlug[slug]; ok {
		return post, nil
	}
	return nil, fmt.Errorf("post not found: %s", slug)
}
