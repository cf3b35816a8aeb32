package mustache

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// templateExt is the extension a partial/extend name is resolved to on
// disk when it doesn't already carry a "." in its last path element.
const templateExt = ".mustache"

// CacheMode governs how aggressively Parse reuses already-compiled
// templates. Named distinctly from Mode (normal vs identity rendering)
// to keep the two unrelated switches from colliding.
type CacheMode bool

const (
	// Live recompiles a template (and every partial it reaches) on
	// every Parse call, so edits on disk take effect immediately.
	Live CacheMode = false
	// Cached compiles a template once per process and reuses the
	// result for every later Parse of the same path.
	Cached CacheMode = true
)

func (m CacheMode) String() string {
	if bool(m) {
		return "Cached"
	}
	return "Live"
}

var (
	cacheModeChan   = make(chan CacheMode)
	cacheModeChange = make(chan CacheMode)
)

func init() {
	go cacheModeSpitter()
}

func cacheModeSpitter() {
	mode := Live
	for {
		select {
		case cacheModeChan <- mode:
		case mode = <-cacheModeChange:
		}
	}
}

// SetCacheMode switches every future Parse call between Live and Cached.
func SetCacheMode(m CacheMode) { cacheModeChange <- m }

var (
	cacheLock sync.RWMutex
	cache     = map[string]*Template{}
	compiling = newKeyedLock()
)

// Template is a compiled Mustache-family template: a flat Code list plus
// enough of its filesystem identity to resolve the partials and extends
// it references. *Template implements Handle.
type Template struct {
	fs    afero.Fs
	path  string
	dir   string
	debug bool
	codes []Code
}

// Parse compiles the template at path on fs, resolving every partial and
// extend it references relative to path's directory.
func Parse(fs afero.Fs, path string) (*Template, error) {
	return loadTemplate(fs, path, false, nil)
}

// ParseDebug is Parse with debug-mode construction checks enabled:
// unused Extend overrides become a construction error instead of being
// silently ignored.
func ParseDebug(fs afero.Fs, path string) (*Template, error) {
	return loadTemplate(fs, path, true, nil)
}

// ParseWith is Parse with per-call overrides of the Config fields that
// would otherwise come from ParseDebug and the process-wide
// SetCacheMode.
func ParseWith(fs afero.Fs, path string, opts ...Option) (*Template, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return loadTemplate(fs, path, cfg.Debug, &cfg.Cache)
}

// ParseString compiles text directly, under the identity name, without
// reading or caching a file. Partials and extends it references are
// still resolved against fs and name's directory, so callers exercising
// partials from a string still need those files present on fs.
func ParseString(fs afero.Fs, name, text string, debug bool) (*Template, error) {
	t := &Template{fs: fs, path: name, dir: filepath.Dir(name), debug: debug}
	codes, err := parse([]byte(text), name, t, newDefaultCodeFactory(debug))
	if err != nil {
		return nil, err
	}
	t.codes = codes
	return t, nil
}

func loadTemplate(fs afero.Fs, path string, debug bool, forceMode *CacheMode) (*Template, error) {
	mode := <-cacheModeChan
	if forceMode != nil {
		mode = *forceMode
	}
	if mode == Cached {
		if t, ok := lookupCache(path); ok {
			return t, nil
		}
	}

	compiling.Lock(path)
	defer compiling.Unlock(path)

	if mode == Cached {
		if t, ok := lookupCache(path); ok {
			return t, nil
		}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, wrapConstructErr(path, 0, err)
	}
	t := &Template{fs: fs, path: path, dir: filepath.Dir(path), debug: debug}
	codes, err := parse(data, path, t, newDefaultCodeFactory(debug))
	if err != nil {
		return nil, err
	}
	t.codes = codes

	if mode == Cached {
		cacheLock.Lock()
		cache[path] = t
		cacheLock.Unlock()
	}
	return t, nil
}

func lookupCache(path string) (*Template, bool) {
	cacheLock.RLock()
	defer cacheLock.RUnlock()
	t, ok := cache[path]
	return t, ok
}

// resolvePath turns a bare partial/extend name into a filesystem path:
// relative to this template's own directory, with templateExt appended
// unless the name already names a file extension.
func (t *Template) resolvePath(name string) string {
	if filepath.Ext(name) == "" {
		name += templateExt
	}
	return filepath.Join(t.dir, name)
}

// Execute renders the template against data and writes the result to w.
func (t *Template) Execute(w io.Writer, data interface{}) error {
	start := time.Now()
	renderID := uuid.New()
	log := Logger.With().Str("render_id", renderID.String()).Str("file", t.path).Logger()

	fw := NewFutureWriter()
	err := t.renderInto(fw, ScopeOf(data), ModeNormal)
	if err == nil {
		err = fw.Flush(w)
	}
	observeRender("execute", start, err)
	if err != nil {
		log.Error().Err(err).Msg("mustache: render failed")
	}
	return err
}

// Identity writes the template's own source form, byte for byte modulo
// whitespace folded during compilation — the round-trip partner for
// Unexecute.
func (t *Template) Identity(w io.Writer) error {
	fw := NewFutureWriter()
	for _, c := range t.codes {
		if err := c.Identity(fw); err != nil {
			return err
		}
	}
	return fw.Flush(w)
}

// Unexecute is the inverse of Execute: given rendered text this
// template is believed to have produced, it recovers a scope
// that would reproduce it.
func (t *Template) Unexecute(text string) (*Scope, error) {
	start := time.Now()
	scope := NewScope(nil)
	pos := 0
	result, ok, err := runUnexecuteSeq(t.codes, scope, text, &pos, nil)
	if err == nil && !ok {
		err = newError("unexecute", t.path, 0, fmt.Errorf("input text does not match this template"))
	}
	observeRender("unexecute", start, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Compiled exposes the compiled code list, used by Extend (to copy a
// parent's array) and Partial (to unexecute a partial's span in
// isolation) without a type assertion back to *Template.
func (t *Template) Compiled() []Code { return t.codes }

// renderInto executes the compiled code list into fw under mode. It is
// the shared implementation behind both Execute and PartialCode's
// deferred sub-render, so a partial renders under the same mode as its
// including template.
func (t *Template) renderInto(fw *FutureWriter, scope *Scope, mode Mode) error {
	ctx := &RenderContext{Scope: scope, Mode: mode}
	for _, c := range t.codes {
		if err := c.Execute(fw, ctx); err != nil {
			return err
		}
	}
	return nil
}

// Lookup implements Handle by delegating straight to the scope's own
// dotted-name resolution.
func (t *Template) Lookup(scope *Scope, name string) (interface{}, error) {
	return scope.Lookup(name)
}

// Iterable implements Handle for "{{#name}}" sections: every element of
// the looked-up value becomes one sub-scope.
func (t *Template) Iterable(scope *Scope, name string) ([]*Scope, error) {
	v, err := scope.Lookup(name)
	if err != nil {
		return nil, err
	}
	return toScopes(scope, v), nil
}

// IfIterable implements Handle for "{{?name}}" sections: the body runs
// at most once, against the looked-up value treated as a single scope,
// when that value is truthy — unlike Iterable, a slice value is not
// expanded into one sub-scope per element.
func (t *Template) IfIterable(scope *Scope, name string) ([]*Scope, error) {
	v, err := scope.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !truthy(v) {
		return nil, nil
	}
	return []*Scope{elementScope(scope, v)}, nil
}

// Inverted implements Handle for "{{^name}}" sections: the body runs
// once, unchanged against scope, exactly when the looked-up value is
// not truthy.
func (t *Template) Inverted(scope *Scope, name string) ([]*Scope, error) {
	v, err := scope.Lookup(name)
	if err != nil {
		return nil, err
	}
	if truthy(v) {
		return nil, nil
	}
	return []*Scope{scope}, nil
}

// Apply implements Handle's fallback for a Function section whose bound
// name resolved to nil: the body just renders once, normally, against
// the unchanged scope.
func (t *Template) Apply(scope *Scope, fn Callable) ([]*Scope, error) {
	return []*Scope{scope}, nil
}

// Partial implements Handle by resolving name relative to this
// template's own directory and compiling (or fetching from cache) the
// referent.
func (t *Template) Partial(name string) (*Template, error) {
	path := t.resolvePath(name)
	return loadTemplate(t.fs, path, t.debug, nil)
}

// PushWriter implements Handle's "section boundary = writer push" rule:
// every iteration gets its own FutureWriter, which the parent enqueues
// and flushes in order.
func (t *Template) PushWriter(fw *FutureWriter) *FutureWriter {
	return NewFutureWriter()
}

// WriteValue implements Handle for Value/Function/Partial leaves: look
// the name up, format it, and HTML-escape it when encoded is set.
func (t *Template) WriteValue(fw *FutureWriter, scope *Scope, name string, encoded bool) error {
	v, err := scope.Lookup(name)
	if err != nil {
		return err
	}
	s := formatValue(v)
	if encoded {
		s = escapeHTML(s)
	}
	return fw.WriteString(s)
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
