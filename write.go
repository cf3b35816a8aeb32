package mustache

// WriteCode emits a fixed run of literal text. It is also what the
// factory folds adjacent literal runs into during compile.
type WriteCode struct {
	text []byte
	line int
}

func newWriteCode(text string, line int) *WriteCode {
	return &WriteCode{text: []byte(text), line: line}
}

func (w *WriteCode) Execute(fw *FutureWriter, ctx *RenderContext) error {
	return fw.WriteString(string(w.text))
}

func (w *WriteCode) Identity(fw *FutureWriter) error {
	return fw.WriteString(string(w.text))
}

func (w *WriteCode) Line() int { return w.line }

func (w *WriteCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	end := *pos + len(w.text)
	if end > len(text) {
		return nil, false, nil
	}
	if text[*pos:end] != string(w.text) {
		return nil, false, nil
	}
	*pos = end
	return scope, true, nil
}

// append grows the literal in place; used by the parser's constant-run
// folding.
func (w *WriteCode) append(more []byte) {
	w.text = append(w.text, more...)
}
