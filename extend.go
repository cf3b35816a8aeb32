package mustache

// NameCode is "{{$name}}...{{/name}}" — a labelled, overridable region.
// Used as an override target inside an Extend, or as a plain grouping
// construct on its own.
type NameCode struct{ sectionBase }

func newNameCode(m Handle, name string, codes []Code, file string, line int) *NameCode {
	return &NameCode{sectionBase{m: m, name: name, codes: codes, file: file, line: line}}
}

func (n *NameCode) childCodes() []Code { return n.codes }
func (n *NameCode) withChildren(c []Code) Code {
	return &NameCode{sectionBase{n.m, n.name, c, n.file, n.line}}
}

func (n *NameCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	if ctx.Mode == ModeIdentity {
		return n.Identity(fw)
	}
	return executeOverScopes(fw, n.m, n.codes, ctx.Mode, []*Scope{ctx.Scope})
}

func (n *NameCode) Identity(fw *FutureWriter) error {
	return identityWrap(fw, "$", n.name, n.codes)
}

func (n *NameCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	return runUnexecuteSeq(n.codes, scope, text, pos, next)
}

// ExtendCode is "{{<name}}...{{/name}}" — template inheritance.
// At construction it resolves name to a parent template, takes a
// copy of that parent's compiled code array, and substitutes any Name
// node whose key matches one of its own Name children, at any depth.
type ExtendCode struct {
	sectionBase
	rewritten []Code
}

func newExtendCode(m Handle, name string, codes []Code, file string, line int, debug bool) (*ExtendCode, error) {
	overrides := map[string]Code{}
	for _, c := range codes {
		switch nc := c.(type) {
		case *NameCode:
			overrides[nc.name] = nc
		case *WriteCode:
			// pure whitespace/text between named sections: ignored.
		default:
			return nil, &ErrIllegalExtendChild{Parent: name, Child: c}
		}
	}

	parent, err := m.Partial(name)
	if err != nil {
		return nil, &ErrPartialNotFound{Name: name, err: err}
	}

	unused := make(map[string]bool, len(overrides))
	for k := range overrides {
		unused[k] = true
	}
	rewritten, _ := rewriteForExtend(parent.Compiled(), overrides, unused)

	if debug && len(unused) > 0 {
		names := make([]string, 0, len(unused))
		for k := range unused {
			names = append(names, k)
		}
		return nil, newErrUnusedOverrides(name, names)
	}

	return &ExtendCode{
		sectionBase: sectionBase{m: m, name: name, codes: codes, file: file, line: line},
		rewritten:   rewritten,
	}, nil
}

// rewriteForExtend walks codes looking for Name nodes matching a key in
// overrides, at any depth, and returns a rebuilt slice with those slots
// replaced. Every section it descends into that is itself unaffected is
// returned unchanged and shared with the parent's array: a per-Extend
// copy is made only where a substitution actually happens, not as a
// full deep clone of the parent's immutable subtrees.
func rewriteForExtend(codes []Code, overrides map[string]Code, unused map[string]bool) ([]Code, bool) {
	changedAny := false
	out := make([]Code, len(codes))
	for i, c := range codes {
		if nc, ok := c.(*NameCode); ok {
			if repl, found := overrides[nc.name]; found {
				out[i] = repl
				delete(unused, nc.name)
				changedAny = true
				continue
			}
			newChildren, changed := rewriteForExtend(nc.codes, overrides, unused)
			if changed {
				out[i] = nc.withChildren(newChildren)
				changedAny = true
			} else {
				out[i] = c
			}
			continue
		}
		if sec, ok := c.(sectioner); ok {
			newChildren, changed := rewriteForExtend(sec.childCodes(), overrides, unused)
			if changed {
				out[i] = sec.withChildren(newChildren)
				changedAny = true
			} else {
				out[i] = c
			}
			continue
		}
		out[i] = c
	}
	if !changedAny {
		return codes, false
	}
	return out, true
}

func (n *ExtendCode) childCodes() []Code { return n.codes }
func (n *ExtendCode) withChildren(c []Code) Code {
	return &ExtendCode{sectionBase: sectionBase{n.m, n.name, c, n.file, n.line}, rewritten: n.rewritten}
}

func (n *ExtendCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	if ctx.Mode == ModeIdentity {
		return n.Identity(fw)
	}
	for _, c := range n.rewritten {
		if err := c.Execute(fw, ctx); err != nil {
			return err
		}
	}
	return nil
}

// Identity emits only the opening tag: the rewritten parent tree (and
// therefore the override bindings) is not reflected in an Extend's own
// identity rendering.
func (n *ExtendCode) Identity(fw *FutureWriter) error {
	return fw.WriteString("{{<" + n.name + "}}")
}

func (n *ExtendCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	return runUnexecuteSeq(n.rewritten, scope, text, pos, next)
}
