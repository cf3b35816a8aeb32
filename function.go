package mustache

// FunctionCode is "{{_name}}...{{/name}}" — a lambda section whose body
// is post-processed through a callable bound to name.
type FunctionCode struct{ sectionBase }

func newFunctionCode(m Handle, name string, codes []Code, file string, line int) *FunctionCode {
	return &FunctionCode{sectionBase{m: m, name: name, codes: codes, file: file, line: line}}
}

func (n *FunctionCode) childCodes() []Code { return n.codes }
func (n *FunctionCode) withChildren(c []Code) Code {
	return &FunctionCode{sectionBase{n.m, n.name, c, n.file, n.line}}
}

func (n *FunctionCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	if ctx.Mode == ModeIdentity {
		return n.Identity(fw)
	}
	value, err := n.m.Lookup(ctx.Scope, n.name)
	if err != nil {
		return wrapExecErr(n.file, n.line, err)
	}
	switch fn := value.(type) {
	case Callable:
		return n.executeCallable(fw, ctx, fn)
	case func(string) string:
		return n.executeCallable(fw, ctx, Callable(fn))
	case nil:
		scopes, err := n.m.Apply(ctx.Scope, nil)
		if err != nil {
			return wrapExecErr(n.file, n.line, err)
		}
		return executeOverScopes(fw, n.m, n.codes, ctx.Mode, scopes)
	default:
		return wrapExecErr(n.file, n.line, &ErrNotAFunction{Name: n.name, Value: value})
	}
}

// executeCallable renders the body synchronously (not streamed) so the
// callable sees the whole body text before fw ever gets a byte.
func (n *FunctionCode) executeCallable(fw *FutureWriter, ctx *RenderContext, fn Callable) error {
	body := NewFutureWriter()
	for _, c := range n.codes {
		if err := c.Execute(body, ctx); err != nil {
			return err
		}
	}
	rendered, err := body.bytes()
	if err != nil {
		return err
	}
	return fw.WriteString(fn(string(rendered)))
}

func (n *FunctionCode) Identity(fw *FutureWriter) error {
	return identityWrap(fw, "_", n.name, n.codes)
}

// functionBackref is an auxiliary callable-like scope synthesized on
// unexecute: a Scope that also maps rendered-body -> recovered value,
// so a later forward render of the same template reproduces the
// extracted text. This is a best-effort heuristic, flagged as such in
// DESIGN.md — arbitrary callables cannot, in general, be inverted.
type functionBackref struct {
	*Scope
}

func (f *functionBackref) apply(rendered string) string {
	v, ok := f.get(rendered)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (n *FunctionCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	value, ok, err := extractSpan(scope, text, pos, next)
	if err != nil || !ok {
		return nil, false, err
	}
	existing, _ := scope.get(n.name)
	back, ok := existing.(*functionBackref)
	if !ok {
		back = &functionBackref{NewScope(nil)}
		scope.Put(n.name, back)
	}
	body := NewFutureWriter()
	for _, c := range n.codes {
		if err := c.Execute(body, normalCtx(scope)); err != nil {
			return nil, false, err
		}
	}
	rendered, err := body.bytes()
	if err != nil {
		return nil, false, err
	}
	back.Put(string(rendered), value)
	return scope, true, nil
}
