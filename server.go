package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/site"
)

type handlers struct {
	renderer *site.Renderer
	metrics  metrics.Recorder
	logger   *slog.Logger
}

func newRouter(cfg *config.Config, renderer *site.Renderer, collector *metrics.Collector, gatherer prometheus.Gatherer, logger *slog.Logger) (*gin.Engine, error) {
	h := &handlers{renderer: renderer, metrics: collector, logger: logger}

	r := gin.New()
	// ClientIP keys the rate limiter, so forwarded headers count only from
	// configured proxies.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), requestID(), accessLog(logger), metrics.PageViews(collector))

	r.StaticFS("/static", http.FS(site.Static()))

	// Home page route
	r.GET("/", h.page)

	// HTMX fragments
	limiter := newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	fragments := r.Group("/", limiter.middleware())
	fragments.GET("/sections/:id", h.section)
	fragments.GET("/partials/header", h.header)

	r.GET("/metrics", metrics.Handler(gatherer))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}

// render buffers the output so a failing template never sends a partial
// 200.
func (h *handlers) render(c *gin.Context, fn func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	return nil
}

func (h *handlers) fail(c *gin.Context, what string, err error) {
	h.logger.Error("failed to render "+what,
		slog.Any("error", err),
		slog.String("request_id", c.GetString("request_id")),
	)
	c.String(http.StatusInternalServerError, "internal server error")
}

func (h *handlers) page(c *gin.Context) {
	err := h.render(c, func(w io.Writer) error {
		return h.renderer.Page(w, site.Menu{})
	})
	if err != nil {
		h.fail(c, "page", err)
		return
	}
	h.metrics.RecordPageRender()
}

func (h *handlers) section(c *gin.Context) {
	id := c.Param("id")
	err := h.render(c, func(w io.Writer) error {
		return h.renderer.Section(w, id)
	})
	switch {
	case errors.Is(err, site.ErrUnknownSection):
		c.String(http.StatusNotFound, "section not found")
		return
	case err != nil:
		h.fail(c, "section", err)
		return
	}
	h.metrics.RecordFragmentRender(id)
}

// header applies a menu event to the state sent by the client and returns
// the re-rendered header.
func (h *handlers) header(c *gin.Context) {
	menu := site.ParseMenu(c.Query("menu"))
	event := c.Query("event")
	if err := menu.Apply(event); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	err := h.render(c, func(w io.Writer) error {
		return h.renderer.Header(w, menu)
	})
	if err != nil {
		h.fail(c, "header", err)
		return
	}
	h.metrics.RecordMenuEvent(event)
	h.metrics.RecordFragmentRender("header")
}
