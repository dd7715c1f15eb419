package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/site"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Render and serve a personal portfolio page",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page and its assets as a static site",
	Long: `Render the page once and write index.html plus the static assets.

Examples:
  portfolio export --out ./public
  PROFILE_FILE=profile.yaml portfolio export --out ./public`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return fmt.Errorf("--out is required")
		}

		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		renderer, err := newRenderer(cfg, site.WithStaticExport())
		if err != nil {
			return err
		}
		if err := exportSite(renderer, out); err != nil {
			return err
		}
		log.Info("portfolio exported", slog.String("dir", out))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "public", "output directory")
	rootCmd.AddCommand(serveCmd, exportCmd)
}

// setup loads the config and installs the JSON logger on the command's
// stderr.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.SetupDefault(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// newRenderer loads the profile and attaches the page to its mount point.
// A missing mount point comes back as site.ErrMountPointMissing and is
// reported once, by main.
func newRenderer(cfg *config.Config, opts ...site.Option) (*site.Renderer, error) {
	p, err := profile.Load(cfg.ProfileFile)
	if err != nil {
		return nil, err
	}

	opts = append([]site.Option{site.WithIconKit(cfg.IconKitURL)}, opts...)
	return site.New(p, opts...)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	router, err := newRouter(cfg, renderer, collector, reg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, router)
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("portfolio listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// exportSite writes dir/index.html and dir/static/*.
func exportSite(renderer *site.Renderer, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("failed to create index.html: %w", err)
	}
	if err := renderer.Page(f, site.Menu{}); err != nil {
		f.Close()
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	static := site.Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
