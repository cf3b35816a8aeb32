package mustache

// PartialCode is "{{>name}}" — inclusion of another compiled template
// by name. The referent is resolved eagerly at construction; resolution
// failure is a construction-time error.
type PartialCode struct {
	m       Handle
	name    string
	partial *Template
	file    string
	line    int
}

func newPartialCode(m Handle, name, file string, line int) (*PartialCode, error) {
	t, err := m.Partial(name)
	if err != nil {
		return nil, &ErrPartialNotFound{Name: name, err: err}
	}
	return &PartialCode{m: m, name: name, partial: t, file: file, line: line}, nil
}

func (p *PartialCode) Line() int { return p.line }

func (p *PartialCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	if ctx.Mode == ModeIdentity {
		return p.Identity(fw)
	}
	scope := ctx.Scope
	mode := ctx.Mode
	fw.Enqueue(func() (*FutureWriter, error) {
		child := NewFutureWriter()
		if err := p.partial.renderInto(child, scope, mode); err != nil {
			return nil, wrapExecErr(p.file, p.line, err)
		}
		return child, nil
	})
	return nil
}

func (p *PartialCode) Identity(fw *FutureWriter) error {
	return fw.WriteString("{{>" + p.name + "}}")
}

func (p *PartialCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	partialText, ok, err := extractSpan(scope, text, pos, next)
	if err != nil || !ok {
		return nil, false, err
	}
	sub := NewScope(nil)
	ppos := 0
	result, ok, err := runUnexecuteSeq(p.partial.Compiled(), sub, partialText, &ppos, nil)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	scope.PutDotted(p.name, result)
	return scope, true, nil
}
