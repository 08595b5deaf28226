package build

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	glog "github.com/goliatone/go-logger/glog"

	"jmorrow.dev/internal/render"
	"jmorrow.dev/internal/services"
)

// Builder renders the whole site into an output directory.
type Builder struct {
	Projects  *services.ProjectService
	Posts     *services.PostService
	Renderer  *render.Renderer
	StaticDir string
	Log       glog.Logger

	// Quiet suppresses per-file progress output (used by tests).
	Quiet bool
}

// Result summarises a build run.
type Result struct {
	Pages  int
	Assets int
	Errors int
}

// Run renders every page, serializes the catalog, and copies static assets.
// Validation failures abort before Run is reached; here, individual write
// errors are reported and counted but do not stop the remaining pages.
func (b *Builder) Run(outDir string) (*Result, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	res := &Result{}

	featured := b.Projects.All()
	if len(featured) > 3 {
		featured = featured[:3]
	}

	b.writePage(res, filepath.Join(outDir, "index.html"), func(w io.Writer) error {
		return b.Renderer.Index(w, render.IndexData{Projects: featured, Posts: b.Posts.All()})
	})
	b.writePage(res, filepath.Join(outDir, "projects", "index.html"), func(w io.Writer) error {
		return b.Renderer.Projects(w, render.ProjectsData{Projects: b.Projects.All()})
	})
	b.writePage(res, filepath.Join(outDir, "blog", "index.html"), func(w io.Writer) error {
		return b.Renderer.Blog(w, render.BlogData{Posts: b.Posts.All()})
	})

	posts := b.Posts.All()
	for i := range posts {
		post := &posts[i]
		b.writePage(res, filepath.Join(outDir, "blog", post.Slug, "index.html"), func(w io.Writer) error {
			return b.Renderer.Post(w, render.PostData{Post: post})
		})
	}

	b.writeCatalog(res, filepath.Join(outDir, "api", "projects.json"))

	if b.StaticDir != "" {
		if err := b.copyStatic(outDir, res); err != nil {
			b.fail(res, "static assets", err)
		}
	}

	if res.Errors > 0 {
		return res, fmt.Errorf("build finished with %d errors", res.Errors)
	}
	return res, nil
}

// writePage renders one page to disk and reports progress.
func (b *Builder) writePage(res *Result, path string, renderFn func(io.Writer) error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		b.fail(res, path, err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		b.fail(res, path, err)
		return
	}

	if err := renderFn(f); err != nil {
		f.Close()
		b.fail(res, path, err)
		return
	}

	if err := f.Close(); err != nil {
		b.fail(res, path, err)
		return
	}

	res.Pages++
	if !b.Quiet {
		color.Green("  %s\n", path)
	}
}

// writeCatalog serializes the catalog storage form. Field order and record
// order match the source file, so a rebuild round-trips byte-for-byte.
func (b *Builder) writeCatalog(res *Result, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		b.fail(res, path, err)
		return
	}

	data, err := json.MarshalIndent(b.Projects.List(), "", "  ")
	if err != nil {
		b.fail(res, path, err)
		return
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		b.fail(res, path, err)
		return
	}

	res.Pages++
	if !b.Quiet {
		color.Green("  %s\n", path)
	}
}

// copyStatic mirrors the static directory into the output tree.
func (b *Builder) copyStatic(outDir string, res *Result) error {
	return filepath.WalkDir(b.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(b.StaticDir, path)
		if err != nil {
			return err
		}

		dst := filepath.Join(outDir, "static", rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return err
		}

		res.Assets++
		return nil
	})
}

func (b *Builder) fail(res *Result, path string, err error) {
	res.Errors++
	if !b.Quiet {
		color.Red("  %s: %v\n", path, err)
	}
	if b.Log != nil {
		b.Log.Error("build step failed", "path", path, "error", err)
	}
}
