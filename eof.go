package mustache

// EOFCode is the end-of-template marker the factory appends to every
// compiled code list, used as a terminator when reverse-matching the
// final value.
type EOFCode struct {
	line int
}

func newEOFCode(line int) *EOFCode { return &EOFCode{line: line} }

func (e *EOFCode) Execute(fw *FutureWriter, ctx *RenderContext) error { return nil }

func (e *EOFCode) Identity(fw *FutureWriter) error { return nil }

func (e *EOFCode) Line() int { return e.line }

// Unexecute only succeeds once the cursor has actually reached the end
// of text. This matters beyond the top-level "did we consume
// everything" check: EOF is also the terminal lookahead a trailing
// Value/Function/Partial's span extraction probes against, so it must
// reject every position except the true end — an always-succeeding EOF
// would let that probe match immediately and extract an empty span.
func (e *EOFCode) Unexecute(scope *Scope, text string, pos *int, next []Code) (*Scope, bool, error) {
	if *pos != len(text) {
		return nil, false, nil
	}
	return scope, true, nil
}
