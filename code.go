package mustache

// Mode selects what Execute produces: a real render against a scope, or
// the template's own source form for introspection. Keeping this an
// explicit sum threaded alongside the scope avoids overloading the
// scope type with a sentinel value.
type Mode int

const (
	// ModeNormal renders a node against its scope.
	ModeNormal Mode = iota
	// ModeIdentity renders a node's original template source instead of
	// evaluating it; used for introspection and the identity round-trip
	// invariant.
	ModeIdentity
)

// RenderContext pairs a scope with the mode it's being rendered under.
type RenderContext struct {
	Scope *Scope
	Mode  Mode
}

func normalCtx(s *Scope) *RenderContext { return &RenderContext{Scope: s, Mode: ModeNormal} }

// Callable is the string -> string post-processor a Function section
// binds to.
type Callable func(string) string

// Code is the polymorphic opcode every compiled template is a flat list
// of. Every code variant satisfies this interface.
type Code interface {
	// Execute renders this node into fw against ctx.
	Execute(fw *FutureWriter, ctx *RenderContext) error
	// Identity writes this node's own template source, ignoring ctx.Mode.
	Identity(fw *FutureWriter) error
	// Unexecute attempts to consume this node's share of text starting at
	// *pos, given the lookahead codes that follow it in document order.
	// ok is false for an ordinary data-driven mismatch; err is non-nil
	// only for a structural problem.
	Unexecute(scope *Scope, text string, pos *int, next []Code) (result *Scope, ok bool, err error)
	// Line is the source line this node was compiled from.
	Line() int
}

// Handle is the template-handle interface the core calls back into for
// every semantic query. *Template implements it.
type Handle interface {
	Lookup(scope *Scope, name string) (interface{}, error)
	Iterable(scope *Scope, name string) ([]*Scope, error)
	IfIterable(scope *Scope, name string) ([]*Scope, error)
	Inverted(scope *Scope, name string) ([]*Scope, error)
	Apply(scope *Scope, fn Callable) ([]*Scope, error)
	Partial(name string) (*Template, error)
	PushWriter(fw *FutureWriter) *FutureWriter
	WriteValue(fw *FutureWriter, scope *Scope, name string, encoded bool) error
	Compiled() []Code
}

// CodeFactory is the parser's output sink, one constructor per variant
// plus the factory-only inter-tag Write.
type CodeFactory interface {
	Write(text string, line int) Code
	Value(m Handle, name string, encoded bool, line int) Code
	Iterable(m Handle, name string, codes []Code, file string, line int) Code
	IfIterable(m Handle, name string, codes []Code, file string, line int) Code
	InvertedIterable(m Handle, name string, codes []Code, file string, line int) Code
	Function(m Handle, name string, codes []Code, file string, line int) Code
	Partial(m Handle, name string, file string, line int) (Code, error)
	Extend(m Handle, name string, codes []Code, file string, line int) (Code, error)
	Name(m Handle, name string, codes []Code, file string, line int) Code
	EOF(line int) Code
}

// truncateCodes builds the lookahead view a child node sees of what
// still follows it in document order: the tail of its siblings starting
// at start, concatenated with the external lookahead next. The result
// must not share mutable state across recursive calls, so this always
// allocates a fresh slice rather than reslicing codes.
func truncateCodes(codes []Code, start int, next []Code) []Code {
	if start > len(codes) {
		start = len(codes)
	}
	out := make([]Code, 0, len(codes)-start+len(next))
	out = append(out, codes[start:]...)
	out = append(out, next...)
	return out
}

// extractSpan is the shared value-span extraction primitive: it probes
// forward one character at a time until the lookahead's head code
// matches, committing pos to the start of that match and returning
// everything consumed in between.
func extractSpan(scope *Scope, text string, pos *int, next []Code) (string, bool, error) {
	if len(next) == 0 {
		return "", false, nil
	}
	start := *pos
	probe := start
	lastPos := start
	matched := false
	for {
		lastPos = probe
		p := probe
		_, ok, err := next[0].Unexecute(scope, text, &p, next[1:])
		if err != nil {
			return "", false, err
		}
		if ok {
			matched = true
			break
		}
		if probe >= len(text) {
			break
		}
		probe++
	}
	if !matched {
		return "", false, nil
	}
	value := text[start:lastPos]
	*pos = lastPos
	return value, true, nil
}

// runUnexecuteSeq threads scope through codes in sequence, building each
// one's lookahead from its own siblings plus the caller-supplied next,
// per the truncate contract. The first mismatch or structural error
// stops the sequence.
func runUnexecuteSeq(codes []Code, scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	cur := scope
	for i, c := range codes {
		lookahead := truncateCodes(codes, i+1, next)
		var ok bool
		var err error
		cur, ok, err = c.Unexecute(cur, text, pos, lookahead)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
	}
	return cur, true, nil
}

// executeOverScopes runs codes once per scope in scopes, each against its
// own pushed child writer enqueued into fw in order — the "section
// boundary = writer push" rule every section variant follows.
func executeOverScopes(fw *FutureWriter, m Handle, codes []Code, mode Mode, scopes []*Scope) error {
	for _, s := range scopes {
		sub := s
		child := m.PushWriter(fw)
		subCtx := &RenderContext{Scope: sub, Mode: mode}
		fw.Enqueue(func() (*FutureWriter, error) {
			for _, code := range codes {
				if err := code.Execute(child, subCtx); err != nil {
					return nil, err
				}
			}
			return child, nil
		})
	}
	return nil
}

// identityWrap writes "{{marker name}}", each child's identity in turn,
// then "{{/name}}" — the common shape shared by every section variant's
// identity rendering.
func identityWrap(fw *FutureWriter, marker, name string, codes []Code) error {
	if err := fw.WriteString("{{" + marker + name + "}}"); err != nil {
		return err
	}
	for _, c := range codes {
		if err := c.Identity(fw); err != nil {
			return err
		}
	}
	return fw.WriteString("{{/" + name + "}}")
}
