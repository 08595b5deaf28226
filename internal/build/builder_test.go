package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jmorrow.dev/internal/models"
	"jmorrow.dev/internal/render"
	"jmorrow.dev/internal/services"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()

	catalog := &models.ProjectList{Projects: []models.Project{
		{Title: "Demo", Description: "A demo project.", Href: "https://example.com", Slug: "demo"},
		{Title: "Second Thing", Description: "Another project.", Slug: "second-thing"},
	}}

	contentDir := t.TempDir()
	postSrc := "---\ntitle: \"Hello\"\ndate: 2024-01-02\n---\n\nFirst post.\n"
	if err := os.WriteFile(filepath.Join(contentDir, "hello.md"), []byte(postSrc), 0644); err != nil {
		t.Fatalf("write post: %v", err)
	}

	posts, err := services.LoadPosts(contentDir, false, nil)
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	staticDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(staticDir, "css"), 0755); err != nil {
		t.Fatalf("mkdir static: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "css", "site.css"), []byte("body{}"), 0644); err != nil {
		t.Fatalf("write css: %v", err)
	}

	return &Builder{
		Projects:  services.NewProjectService(catalog),
		Posts:     posts,
		Renderer:  renderer,
		StaticDir: staticDir,
		Quiet:     true,
	}
}

func TestBuildWritesAllPages(t *testing.T) {
	b := newTestBuilder(t)
	out := t.TempDir()

	res, err := b.Run(out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, path := range []string{
		"index.html",
		filepath.Join("projects", "index.html"),
		filepath.Join("blog", "index.html"),
		filepath.Join("blog", "hello", "index.html"),
		filepath.Join("api", "projects.json"),
		filepath.Join("static", "css", "site.css"),
	} {
		if _, err := os.Stat(filepath.Join(out, path)); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}

	// index, projects, blog index, one post, plus the catalog JSON.
	if res.Pages != 5 {
		t.Fatalf("expected 5 pages, got %d", res.Pages)
	}
	if res.Assets != 1 {
		t.Fatalf("expected 1 asset, got %d", res.Assets)
	}
	if res.Errors != 0 {
		t.Fatalf("expected no errors, got %d", res.Errors)
	}
}

func TestBuildProjectsPageHonorsContract(t *testing.T) {
	b := newTestBuilder(t)
	out := t.TempDir()

	if _, err := b.Run(out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "projects", "index.html"))
	if err != nil {
		t.Fatalf("read projects page: %v", err)
	}

	html := string(data)
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Fatalf("expected linked card, got:\n%s", html)
	}
	if strings.Index(html, "Demo") > strings.Index(html, "Second Thing") {
		t.Fatalf("catalog order not preserved:\n%s", html)
	}
}

// The emitted catalog JSON is the storage form: reloading it yields the same
// ordered records.
func TestBuildCatalogRoundTrip(t *testing.T) {
	b := newTestBuilder(t)
	out := t.TempDir()

	if _, err := b.Run(out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "api", "projects.json"))
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}

	var reloaded models.ProjectList
	if err := json.Unmarshal(data, &reloaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	source := b.Projects.All()
	if len(reloaded.Projects) != len(source) {
		t.Fatalf("expected %d records, got %d", len(source), len(reloaded.Projects))
	}
	for i := range source {
		want, got := source[i], reloaded.Projects[i]
		if got.Title != want.Title || got.Description != want.Description || got.Href != want.Href || got.ImgSrc != want.ImgSrc {
			t.Fatalf("record %d changed: got %+v, want %+v", i, got, want)
		}
	}
}

// A page that cannot be written is counted and reported, but the rest of the
// site still builds.
func TestBuildContinuesPastPageErrors(t *testing.T) {
	b := newTestBuilder(t)
	out := t.TempDir()

	// Occupy the blog directory with a regular file so every blog page
	// fails its MkdirAll.
	if err := os.WriteFile(filepath.Join(out, "blog"), []byte("in the way"), 0644); err != nil {
		t.Fatalf("plant blocking file: %v", err)
	}

	res, err := b.Run(out)
	if err == nil {
		t.Fatal("expected build error summary")
	}
	if !strings.Contains(err.Error(), "errors") {
		t.Fatalf("expected error summary, got %q", err)
	}

	// blog/index.html plus the one post page.
	if res.Errors != 2 {
		t.Fatalf("expected 2 errors, got %d", res.Errors)
	}

	// Every page outside the blocked directory was still written.
	for _, path := range []string{
		"index.html",
		filepath.Join("projects", "index.html"),
		filepath.Join("api", "projects.json"),
	} {
		if _, err := os.Stat(filepath.Join(out, path)); err != nil {
			t.Fatalf("expected %s despite blog errors: %v", path, err)
		}
	}
	if res.Pages != 3 {
		t.Fatalf("expected 3 pages written, got %d", res.Pages)
	}
	if res.Assets != 1 {
		t.Fatalf("expected static assets still copied, got %d", res.Assets)
	}
}

func TestBuildWithoutStaticDir(t *testing.T) {
	b := newTestBuilder(t)
	b.StaticDir = ""
	out := t.TempDir()

	res, err := b.Run(out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Assets != 0 {
		t.Fatalf("expected no assets, got %d", res.Assets)
	}
}
