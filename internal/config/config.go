package config

import (
	"encoding/json"
	"fmt"
	"os"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-slug"
	"github.com/spf13/viper"

	"jmorrow.dev/internal/models"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Config holds all runtime settings for the site binary.
type Config struct {
	Addr       string
	DataDir    string
	ContentDir string
	StaticDir  string
	OutputDir  string
	LogLevel   string
	Drafts     bool
}

// Load reads configuration from viper, which merges flag values, SITE_* env
// vars, and defaults (set up by the cobra command in cmd/site).
func Load() Config {
	return Config{
		Addr:       viper.GetString("addr"),
		DataDir:    viper.GetString("data_dir"),
		ContentDir: viper.GetString("content_dir"),
		StaticDir:  viper.GetString("static_dir"),
		OutputDir:  viper.GetString("output_dir"),
		LogLevel:   viper.GetString("log_level"),
		Drafts:     viper.GetBool("drafts"),
	}
}

// LoadProjects reads the catalog storage file, validates every record, and
// derives slugs. A record missing its title or description is an authoring
// error and fails the load; malformed link fields are logged and kept.
func LoadProjects(path string, log glog.Logger) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var list models.ProjectList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := make(map[string]int, len(list.Projects))
	for i := range list.Projects {
		p := &list.Projects[i]
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: project %d (%q): %w", path, i, p.Title, err)
		}

		s, err := slug.Normalize(p.Title)
		if err != nil {
			return nil, fmt.Errorf("%s: project %d: slug for %q: %w", path, i, p.Title, err)
		}
		if prev, dup := seen[s]; dup {
			return nil, fmt.Errorf("%s: project %d duplicates title of project %d (%q)", path, i, prev, p.Title)
		}
		seen[s] = i
		p.Slug = s

		if log != nil {
			for _, warn := range p.LinkWarnings() {
				log.Warn("catalog link check", "project", p.Slug, "detail", warn)
			}
		}
	}

	return &list, nil
}
