package mustache

// ValueCode looks up a dotted name and emits it, HTML-escaping the
// result when Encoded is set. The actual lookup and
// formatting is delegated to the template Handle so callers can swap in
// their own value-coercion rules.
type ValueCode struct {
	m       Handle
	name    string
	encoded bool
	line    int
}

func newValueCode(m Handle, name string, encoded bool, line int) *ValueCode {
	return &ValueCode{m: m, name: name, encoded: encoded, line: line}
}

func (v *ValueCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	if ctx.Mode == ModeIdentity {
		return v.Identity(fw)
	}
	return v.m.WriteValue(fw, ctx.Scope, v.name, v.encoded)
}

func (v *ValueCode) Identity(fw *FutureWriter) error {
	if v.encoded {
		return fw.WriteString("{{" + v.name + "}}")
	}
	return fw.WriteString("{{{" + v.name + "}}}")
}

func (v *ValueCode) Line() int { return v.line }

func (v *ValueCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	value, ok, err := extractSpan(scope, text, pos, next)
	if err != nil || !ok {
		return nil, false, err
	}
	if v.encoded {
		value = unescapeHTML(value)
	}
	scope.PutDotted(v.name, value)
	return scope, true, nil
}
