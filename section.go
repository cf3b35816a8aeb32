package mustache

// sectioner is implemented by every Code variant that owns a child code
// list, so the Extend inheritance rewrite can walk and rebuild arbitrary
// subtrees without a type switch per variant.
type sectioner interface {
	Code
	childCodes() []Code
	withChildren(children []Code) Code
}

// sectionBase holds the fields every section variant shares: the handle
// used for semantic queries, the bound name, its children, and
// diagnostic coordinates.
type sectionBase struct {
	m      Handle
	name   string
	codes  []Code
	file   string
	line   int
}

func (s *sectionBase) Line() int { return s.line }

// IterableCode is "{{#name}}...{{/name}}" — a repeating section.
type IterableCode struct{ sectionBase }

func newIterableCode(m Handle, name string, codes []Code, file string, line int) *IterableCode {
	return &IterableCode{sectionBase{m: m, name: name, codes: codes, file: file, line: line}}
}

func (n *IterableCode) childCodes() []Code           { return n.codes }
func (n *IterableCode) withChildren(c []Code) Code   { return &IterableCode{sectionBase{n.m, n.name, c, n.file, n.line}} }

func (n *IterableCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	if ctx.Mode == ModeIdentity {
		return n.Identity(fw)
	}
	scopes, err := n.m.Iterable(ctx.Scope, n.name)
	if err != nil {
		return wrapExecErr(n.file, n.line, err)
	}
	return executeOverScopes(fw, n.m, n.codes, ctx.Mode, scopes)
}

func (n *IterableCode) Identity(fw *FutureWriter) error {
	return identityWrap(fw, "#", n.name, n.codes)
}

func (n *IterableCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	var results []interface{}
	for {
		start := *pos
		sub := NewScope(nil)
		res, ok, err := runUnexecuteSeq(n.codes, sub, text, pos, next)
		if err != nil {
			return nil, false, err
		}
		if !ok || res.Len() == 0 {
			*pos = start
			break
		}
		results = append(results, res)
	}
	if len(results) > 0 {
		scope.Put(n.name, results)
	}
	return scope, true, nil
}

// IfIterableCode is "{{?name}}...{{/name}}" — a truthy-once section,
// not standard Mustache but part of this engine's grammar.
type IfIterableCode struct{ sectionBase }

func newIfIterableCode(m Handle, name string, codes []Code, file string, line int) *IfIterableCode {
	return &IfIterableCode{sectionBase{m: m, name: name, codes: codes, file: file, line: line}}
}

func (n *IfIterableCode) childCodes() []Code         { return n.codes }
func (n *IfIterableCode) withChildren(c []Code) Code { return &IfIterableCode{sectionBase{n.m, n.name, c, n.file, n.line}} }

func (n *IfIterableCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	child := n.m.PushWriter(fw)
	if ctx.Mode == ModeIdentity {
		fw.Enqueue(func() (*FutureWriter, error) {
			return child, identityWrap(child, "?", n.name, n.codes)
		})
		return nil
	}
	scopes, err := n.m.IfIterable(ctx.Scope, n.name)
	if err != nil {
		return wrapExecErr(n.file, n.line, err)
	}
	return executeOverScopes(fw, n.m, n.codes, ctx.Mode, scopes)
}

func (n *IfIterableCode) Identity(fw *FutureWriter) error {
	return identityWrap(fw, "?", n.name, n.codes)
}

func (n *IfIterableCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	sub := NewScope(nil)
	res, ok, err := runUnexecuteSeq(n.codes, sub, text, pos, next)
	if err != nil {
		return nil, false, err
	}
	if ok && res.Len() > 0 {
		scope.PutDotted(n.name, res)
	}
	return scope, true, nil
}

// InvertedIterableCode is "{{^name}}...{{/name}}" — renders its body
// when name is empty/false/absent.
type InvertedIterableCode struct{ sectionBase }

func newInvertedIterableCode(m Handle, name string, codes []Code, file string, line int) *InvertedIterableCode {
	return &InvertedIterableCode{sectionBase{m: m, name: name, codes: codes, file: file, line: line}}
}

func (n *InvertedIterableCode) childCodes() []Code { return n.codes }
func (n *InvertedIterableCode) withChildren(c []Code) Code {
	return &InvertedIterableCode{sectionBase{n.m, n.name, c, n.file, n.line}}
}

func (n *InvertedIterableCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	child := n.m.PushWriter(fw)
	if ctx.Mode == ModeIdentity {
		fw.Enqueue(func() (*FutureWriter, error) {
			return child, identityWrap(child, "^", n.name, n.codes)
		})
		return nil
	}
	scopes, err := n.m.Inverted(ctx.Scope, n.name)
	if err != nil {
		return wrapExecErr(n.file, n.line, err)
	}
	return executeOverScopes(fw, n.m, n.codes, ctx.Mode, scopes)
}

func (n *InvertedIterableCode) Identity(fw *FutureWriter) error {
	return identityWrap(fw, "^", n.name, n.codes)
}

func (n *InvertedIterableCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	sub := NewScope(nil)
	res, ok, err := runUnexecuteSeq(n.codes, sub, text, pos, next)
	if err != nil {
		return nil, false, err
	}
	if ok {
		scope.Merge(res)
		scope.PutDotted(n.name, false)
	}
	return scope, true, nil
}
