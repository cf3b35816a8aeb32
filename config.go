package mustache

// Config groups the construction-time toggles Parse accepts, favoring a
// small struct over a long positional parameter list.
type Config struct {
	// Cache selects Live or Cached compilation for this call only; the
	// zero value (Live) matches SetCacheMode's own default.
	Cache CacheMode
	// Debug turns on construction-time checks that are otherwise
	// skipped for speed, currently just Extend's unused-override check.
	Debug bool
}

// Option mutates a Config; passed to ParseWith.
type Option func(*Config)

// WithCache overrides this call's cache mode regardless of the process
// default set by SetCacheMode.
func WithCache(m CacheMode) Option {
	return func(c *Config) { c.Cache = m }
}

// WithDebug turns on debug-mode construction checks for this call.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}
