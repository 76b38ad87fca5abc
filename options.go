package cachecore

import (
	"github.com/cachecore/cachecore/clock"
	"github.com/cachecore/cachecore/eviction"
	"github.com/cachecore/cachecore/expiry"
	"github.com/cachecore/cachecore/loader"
	"github.com/cachecore/cachecore/metrics"
	"github.com/cachecore/cachecore/sample"
)

// config accumulates the options passed to New before defaults are
// applied. maxEntries is a pointer so New can tell "never set" (nil,
// meaning unbounded) apart from an explicit zero (a legitimate, if
// unusual, zero-capacity cache).
type config struct {
	expiry     expiry.Policy
	sampler    sample.Sampler
	eviction   eviction.Policy
	maxEntries *int
	loader     loader.Loader
	clock      clock.Clock
	metrics    metrics.Metrics
}

// Option configures a Cache built by New.
type Option func(*config)

// WithExpiryPolicy sets the expiry policy. Default: expiry.Eternal{}.
func WithExpiryPolicy(p expiry.Policy) Option {
	return func(c *config) { c.expiry = p }
}

// WithSampler sets the eviction candidate sampler. Default: sample.Full{}.
func WithSampler(s sample.Sampler) Option {
	return func(c *config) { c.sampler = s }
}

// WithEvictionPolicy sets the eviction ranking policy. Default: LRU.
func WithEvictionPolicy(p eviction.Policy) Option {
	return func(c *config) { c.eviction = p }
}

// WithMaxEntries caps the cache at n entries. n must be >= 0; New returns
// a *ConfigurationError if it is negative. Default: unbounded.
func WithMaxEntries(n int) Option {
	return func(c *config) { c.maxEntries = &n }
}

// WithLoader sets the on-miss loader. Default: none, misses return absent.
func WithLoader(l loader.Loader) Option {
	return func(c *config) { c.loader = l }
}

// WithClock overrides the time source. Default: clock.System{}.
func WithClock(clk clock.Clock) Option {
	return func(c *config) { c.clock = clk }
}

// WithMetrics sets the observability sink. Default: metrics.Noop{}.
func WithMetrics(m metrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}
