// internal/server/router.go
//
// chi router for the resolver API and page renderer.
//
// Routes
// ------
//   - POST /v1/url            – entity URL (standalone chain).
//   - POST /v1/child-url      – child URL for a profile under a parent.
//   - POST /v1/locator-url    – locator result URL (source page sets first).
//   - POST /v1/location-path  – structural fallback path only.
//   - POST /v1/breadcrumbs    – trail plus BreadcrumbList JSON-LD.
//   - POST /v1/list-child     – href of one child on a directory page.
//   - POST /v1/listing        – every directory child, labelled and sorted.
//   - POST /v1/page           – rendered HTML page.
//   - GET  /healthz           – liveness.
//   - GET  /metrics           – Prometheus.
//
// Middleware order: request id → real ip → access log → recoverer →
// security headers → optional HTTPS redirect.
//
// Notes
// -----
//   - Oxford commas, two spaces after periods.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/middleware"
	"github.com/yanizio/pagepath/internal/view"
)

// DefaultMaxBodyBytes caps request bodies when Deps leaves it zero.
const DefaultMaxBodyBytes int64 = 1 << 20

// PageSetSource injects a stored page-set config into a document.
// *pageset.Cache satisfies it.
type PageSetSource interface {
	Enrich(ctx context.Context, doc document.Document, pageSetID string) (document.Document, error)
}

// Deps wires the router.  PageSets may be nil, in which case pageSetId in a
// request is rejected.
type Deps struct {
	PageSets     PageSetSource
	Views        *view.Engine
	MaxBodyBytes int64
	ForceHTTPS   bool
}

type handlers struct {
	Deps
}

// NewRouter builds the full HTTP handler.
func NewRouter(d Deps) http.Handler {
	if d.MaxBodyBytes <= 0 {
		d.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &handlers{Deps: d}

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, middleware.AccessLog, chimw.Recoverer, middleware.Security)
	if d.ForceHTTPS {
		r.Use(middleware.ForceHTTPS)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/url", h.entityURL)
		r.Post("/child-url", h.childURL)
		r.Post("/locator-url", h.locatorURL)
		r.Post("/location-path", h.locationPath)
		r.Post("/breadcrumbs", h.breadcrumbs)
		r.Post("/list-child", h.listChild)
		r.Post("/listing", h.listing)
		r.Post("/page", h.page)
	})
	return r
}
