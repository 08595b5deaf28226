package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jmorrow.dev/internal/build"
	"jmorrow.dev/internal/config"
	"jmorrow.dev/internal/handlers"
	"jmorrow.dev/internal/render"
	"jmorrow.dev/internal/services"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "site",
		Short: "Personal portfolio and blog",
	}

	f := rootCmd.PersistentFlags()
	f.String("addr", ":8080", "listen address for serve")
	f.String("data-dir", "data", "directory holding the project catalog")
	f.String("content-dir", "content/posts", "directory holding blog posts")
	f.String("static-dir", "static", "directory holding static assets")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.Bool("drafts", false, "include draft posts")

	// Bind flags to viper. Viper keys use underscores so they match the env
	// var suffix after stripping the SITE_ prefix.
	bindFlag := func(viperKey, flagName string) {
		_ = viper.BindPFlag(viperKey, f.Lookup(flagName))
	}
	bindFlag("addr", "addr")
	bindFlag("data_dir", "data-dir")
	bindFlag("content_dir", "content-dir")
	bindFlag("static_dir", "static-dir")
	bindFlag("log_level", "log-level")
	bindFlag("drafts", "drafts")

	viper.SetEnvPrefix("SITE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE:  runServe,
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site to a directory of static files",
		RunE:  runBuild,
	}
	buildCmd.Flags().StringP("output", "o", "public", "output directory")
	_ = viper.BindPFlag("output_dir", buildCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(serveCmd, buildCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSite loads the catalog and posts once and wires the renderer.
func loadSite(cfg config.Config, root *glog.BaseLogger) (*handlers.Site, error) {
	log := root.GetLogger("content")

	projects, err := config.LoadProjects(filepath.Join(cfg.DataDir, "projects.json"), log)
	if err != nil {
		return nil, err
	}

	posts, err := services.LoadPosts(cfg.ContentDir, cfg.Drafts, log)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	return &handlers.Site{
		Projects:  services.NewProjectService(projects),
		Posts:     posts,
		Renderer:  renderer,
		StaticDir: cfg.StaticDir,
		Log:       root.GetLogger("server"),
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	root := newLogger(cfg.LogLevel)
	log := root.GetLogger("server")

	site, err := loadSite(cfg, root)
	if err != nil {
		log.Error("load site", "error", err)
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handlers.SetupRoutes(site),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "version", config.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	root := newLogger(cfg.LogLevel)

	site, err := loadSite(cfg, root)
	if err != nil {
		return err
	}

	builder := &build.Builder{
		Projects:  site.Projects,
		Posts:     site.Posts,
		Renderer:  site.Renderer,
		StaticDir: cfg.StaticDir,
		Log:       root.GetLogger("build"),
	}

	fmt.Printf("Building site into %s\n", cfg.OutputDir)
	res, err := builder.Run(cfg.OutputDir)
	if err != nil {
		return err
	}

	fmt.Printf("Done: %d pages, %d assets\n", res.Pages, res.Assets)
	return nil
}

func newLogger(level string) *glog.BaseLogger {
	options := []glog.Option{glog.WithLoggerTypePretty()}

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		options = append(options, glog.WithLevel(glog.Debug))
	case "warn", "warning":
		options = append(options, glog.WithLevel(glog.Warn))
	case "error":
		options = append(options, glog.WithLevel(glog.Error))
	default:
		options = append(options, glog.WithLevel(glog.Info))
	}

	return glog.NewLogger(options...)
}
