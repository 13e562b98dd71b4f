package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/breadcrumb"
	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/metrics"
	"github.com/yanizio/pagepath/internal/pageset"
	"github.com/yanizio/pagepath/internal/urls"
	"github.com/yanizio/pagepath/internal/view"
)

// resolveRequest is the body of every POST /v1 route.
type resolveRequest struct {
	Document             document.Document `json:"document"`
	Profile              document.Document `json:"profile,omitempty"`
	Child                document.Document `json:"child,omitempty"`
	RelativePrefixToRoot string            `json:"relativePrefixToRoot,omitempty"`
	PageSetID            string            `json:"pageSetId,omitempty"`
	PageID               string            `json:"pageId,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// httpError carries the status a handler failure should map to.
type httpError struct {
	status int
	err    error
}

func (e *httpError) Error() string { return e.err.Error() }
func (e *httpError) Unwrap() error { return e.err }

func badRequest(format string, args ...any) error {
	return &httpError{status: http.StatusBadRequest, err: fmt.Errorf(format, args...)}
}

// ------------------------------------------------------------------
// Routes
// ------------------------------------------------------------------

func (h *handlers) entityURL(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := urls.ResolveEntity(req.Document, req.RelativePrefixToRoot)
	h.resolution(w, r, urls.ResolverEntity, res, err)
}

func (h *handlers) childURL(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err == nil && req.Profile == nil {
		err = badRequest("profile is required")
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := urls.ResolveChild(req.Profile, req.Document, req.RelativePrefixToRoot)
	h.resolution(w, r, urls.ResolverChild, res, err)
}

func (h *handlers) locatorURL(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err == nil && req.Profile == nil {
		err = badRequest("profile is required")
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := urls.ResolveLocatorResult(req.Profile, req.Document, req.RelativePrefixToRoot)
	h.resolution(w, r, urls.ResolverLocator, res, err)
}

func (h *handlers) locationPath(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	path, err := urls.LocationPath(req.Document, req.RelativePrefixToRoot)
	if err != nil {
		h.fail(w, r, &httpError{status: http.StatusUnprocessableEntity, err: err})
		return
	}
	writeJSON(w, http.StatusOK, urls.Resolution{URL: path, Strategy: urls.StrategyLocationPath})
}

func (h *handlers) breadcrumbs(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	trail := breadcrumb.ResolveWith(req.Document, breadcrumb.Options{})
	metrics.BreadcrumbResolutions.WithLabelValues(trail.Strategy).Inc()

	writeJSON(w, http.StatusOK, struct {
		breadcrumb.Trail
		Schema *breadcrumb.BreadcrumbList `json:"schema,omitempty"`
	}{
		Trail:  trail,
		Schema: breadcrumb.Schema(req.Document, trail.Links, req.RelativePrefixToRoot, req.PageID),
	})
}

func (h *handlers) listChild(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err == nil && req.Child == nil {
		err = badRequest("child is required")
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	href, ok := urls.ListChildLink(req.Document, req.Child)
	if !ok {
		// Non-string slugs pass through untouched, null when absent.
		writeJSON(w, http.StatusOK, map[string]any{"href": req.Child["slug"]})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"href": req.RelativePrefixToRoot + href})
}

func (h *handlers) listing(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	links := urls.DirectoryListing(req.Document, req.RelativePrefixToRoot)
	if links == nil {
		links = []urls.ListLink{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.Views == nil {
		h.fail(w, r, &httpError{status: http.StatusNotImplemented, err: errors.New("page rendering disabled")})
		return
	}
	p := view.Build(view.PageInput{
		Doc:                  req.Document,
		RelativePrefixToRoot: req.RelativePrefixToRoot,
		PageID:               req.PageID,
	})
	record(urls.ResolverEntity, p.URLStrategy, p.URL == "")
	metrics.BreadcrumbResolutions.WithLabelValues(p.BreadcrumbStrategy).Inc()

	html, err := h.Views.RenderToString(p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// ------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------

// decode reads the request body and applies the optional stored page set.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request) (*resolveRequest, error) {
	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	var req resolveRequest
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, badRequest("invalid request body: %v", err)
	}
	if req.Document == nil {
		return nil, badRequest("document is required")
	}
	if req.PageSetID == "" {
		return &req, nil
	}
	if h.PageSets == nil {
		return nil, badRequest("pageSetId given but no page-set store is configured")
	}
	doc, err := h.PageSets.Enrich(r.Context(), req.Document, req.PageSetID)
	switch {
	case errors.Is(err, pageset.ErrNotFound):
		return nil, &httpError{status: http.StatusNotFound, err: fmt.Errorf("page set %q: %w", req.PageSetID, err)}
	case err != nil:
		return nil, fmt.Errorf("page set %q: %w", req.PageSetID, err)
	}
	req.Document = doc
	return &req, nil
}

// resolution writes a chain result and records metrics.
func (h *handlers) resolution(w http.ResponseWriter, r *http.Request, resolver string, res urls.Resolution, err error) {
	record(resolver, res.Strategy, err != nil)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, urls.ErrResolutionExhausted) {
			status = http.StatusUnprocessableEntity
		}
		h.fail(w, r, &httpError{status: status, err: err})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func record(resolver, strategy string, failed bool) {
	if failed {
		metrics.URLResolutionFailures.WithLabelValues(resolver).Inc()
		return
	}
	metrics.URLResolutions.WithLabelValues(resolver, strategy).Inc()
}

// fail maps err to a status and writes a JSON error body.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var he *httpError
	if errors.As(err, &he) {
		status = he.status
	}
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		zap.L().Debug("request rejected", zap.String("path", r.URL.Path),
			zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}
