// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package frontend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

type metrics struct {
	parsesTotal     *prometheus.CounterVec
	parseDuration   prometheus.Histogram
	cacheHitsTotal  prometheus.Counter
	cacheEvictTotal prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)
	return &metrics{
		parsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wcps",
			Subsystem: "frontend",
			Name:      "parses_total",
			Help: `The number of queries lexed and parsed, by outcome.

Cache hits are not counted here.`,
		}, []string{"outcome"}),
		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wcps",
			Subsystem: "frontend",
			Name:      "parse_duration_seconds",
			Help:      `Time spent lexing and parsing a single query.`,
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		cacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "wcps",
			Subsystem: "frontend",
			Name:      "cache_hits_total",
			Help:      `The number of queries answered from the parse cache.`,
		}),
		cacheEvictTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "wcps",
			Subsystem: "frontend",
			Name:      "cache_evictions_total",
			Help:      `The number of parsed queries dropped from the cache to make room.`,
		}),
	}
}
