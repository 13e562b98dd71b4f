// Package metrics holds Prometheus instruments used across pagepath.  All
// collectors are registered with the global registry, so importing this
// package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	URLResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagepath_url_resolutions_total",
			Help: "URLs resolved, by resolver and winning strategy.",
		}, []string{"resolver", "strategy"})

	URLResolutionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagepath_url_resolution_failures_total",
			Help: "Resolutions where every strategy was inapplicable.",
		}, []string{"resolver"})

	BreadcrumbResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagepath_breadcrumb_resolutions_total",
			Help: "Breadcrumb trails resolved, by strategy (none when empty).",
		}, []string{"strategy"})

	PageSetsCached = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pagepath_pagesets_cached",
			Help: "Number of page-set configs currently held in memory.",
		})

	PageSetLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pagepath_pageset_load_total",
			Help: "Cumulative number of page-set configs loaded from the store.",
		})

	PageSetLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pagepath_pageset_load_errors_total",
			Help: "Cumulative number of page-set load errors.",
		})

	PageSetEvictTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pagepath_pageset_evict_total",
			Help: "Cumulative number of page-set configs evicted from the cache.",
		})
)

func init() {
	prometheus.MustRegister(
		URLResolutions,
		URLResolutionFailures,
		BreadcrumbResolutions,
		PageSetsCached,
		PageSetLoadTotal,
		PageSetLoadErrorsTotal,
		PageSetEvictTotal,
	)
}
