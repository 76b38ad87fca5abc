// Package prom adapts metrics.Metrics to Prometheus collectors, the same
// way the wider cache ecosystem typically wires observability: counters
// for hit/miss/eviction/expire/load, registered against a caller-supplied
// (or default) registry.
package prom

import (
	"github.com/cachecore/cachecore/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements metrics.Metrics and exports Prometheus counters.
// Safe for concurrent use; Prometheus collectors are goroutine-safe.
type Adapter struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	expires   prometheus.Counter
	loads     prometheus.Counter
}

// New constructs a Prometheus metrics adapter and registers its counters.
//   - reg:         registry to register with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to every metric (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "hits_total",
			Help: "Cache hits.", ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "misses_total",
			Help: "Cache misses.", ConstLabels: constLabels,
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "evictions_total",
			Help: "Entries removed to satisfy a capacity limit.", ConstLabels: constLabels,
		}),
		expires: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "expirations_total",
			Help: "Entries removed because they were found past their expiry.", ConstLabels: constLabels,
		}),
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "loads_total",
			Help: "Values materialized by a configured loader on miss.", ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evictions, a.expires, a.loads)
	return a
}

func (a *Adapter) Hit()      { a.hits.Inc() }
func (a *Adapter) Miss()     { a.misses.Inc() }
func (a *Adapter) Eviction() { a.evictions.Inc() }
func (a *Adapter) Expire()   { a.expires.Inc() }
func (a *Adapter) Load()     { a.loads.Inc() }

// Compile-time check: ensure Adapter implements metrics.Metrics.
var _ metrics.Metrics = (*Adapter)(nil)
