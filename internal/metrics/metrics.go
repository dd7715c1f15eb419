// Package metrics exposes Prometheus counters for page renders, fragment
// renders, header menu events and page views.
package metrics

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the HTTP layer reports into.
type Recorder interface {
	RecordPageRender()
	RecordFragmentRender(fragment string)
	RecordMenuEvent(event string)
	RecordPageView(path string)
}

// Collector is the Prometheus Recorder.
type Collector struct {
	pageRenders     prometheus.Counter
	fragmentRenders *prometheus.CounterVec
	menuEvents      *prometheus.CounterVec
	pageViews       *prometheus.CounterVec
}

// NewCollector registers the portfolio metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		pageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_renders_total",
			Help: "Full page renders.",
		}),
		fragmentRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_fragment_renders_total",
			Help: "Section and header fragment renders.",
		}, []string{"fragment"}),
		menuEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_menu_events_total",
			Help: "Header menu transitions by event.",
		}, []string{"event"}),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Tracked page views by path.",
		}, []string{"path"}),
	}

	reg.MustRegister(c.pageRenders, c.fragmentRenders, c.menuEvents, c.pageViews)
	return c
}

func (c *Collector) RecordPageRender() {
	c.pageRenders.Inc()
}

func (c *Collector) RecordFragmentRender(fragment string) {
	c.fragmentRenders.WithLabelValues(fragment).Inc()
}

func (c *Collector) RecordMenuEvent(event string) {
	c.menuEvents.WithLabelValues(event).Inc()
}

func (c *Collector) RecordPageView(path string) {
	c.pageViews.WithLabelValues(path).Inc()
}

// Handler serves the scrape endpoint.
func Handler(gatherer prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

var untracked = []string{"/static/", "/metrics", "/healthz", "/favicon"}

// PageViews counts a view for every routed request except assets, probes,
// and requests that send DNT: 1. Nothing about the visitor is kept.
func PageViews(rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if route := c.FullPath(); route != "" && c.Writer.Status() < http.StatusBadRequest {
			rec.RecordPageView(route)
		}
	}
}
