package mustache

import "fmt"

// parser turns the token stream lex produces into a flat []Code, matching
// section-open and section-close tags by name rather than by token type,
// since a named close tag can't be resolved from its token type alone.
type parser struct {
	in   chan token
	buf  *token
	last token
	file string
	m    Handle
	f    CodeFactory
}

func newParser(in chan token, file string, m Handle, f CodeFactory) *parser {
	return &parser{in: in, file: file, m: m, f: f}
}

func (p *parser) next() token {
	if p.buf != nil {
		t := *p.buf
		p.buf = nil
		p.last = t
		return t
	}
	if p.last.typ == tokenEOF || p.last.typ == tokenError {
		return p.last
	}
	p.last = <-p.in
	return p.last
}

func (p *parser) backup(t token) { p.buf = &t }

// parse lexes and parses data into a compiled code list, terminated by an
// EOF code, for a template identified by file (used only in diagnostics).
func parse(data []byte, file string, m Handle, f CodeFactory) ([]Code, error) {
	p := newParser(lex(data), file, m, f)
	codes, err := p.parseUntil("")
	if err != nil {
		return nil, err
	}
	codes = append(codes, f.EOF(p.last.line))
	return compact(codes), nil
}

// parseUntil accumulates codes until it sees a matching {{/name}} (name
// non-empty) or EOF (name == "", top level).
func (p *parser) parseUntil(name string) ([]Code, error) {
	var out []Code
	for {
		tok := p.next()
		switch tok.typ {
		case tokenEOF:
			if name != "" {
				return nil, wrapConstructErr(p.file, tok.line, fmt.Errorf("unexpected end of template, expected {{/%s}}", name))
			}
			return out, nil
		case tokenError:
			return nil, wrapConstructErr(p.file, tok.line, fmt.Errorf("%s", tok.dat))
		case tokenComment:
			continue
		case tokenText:
			out = append(out, p.f.Write(tok.dat, tok.line))
		case tokenValue:
			out = append(out, p.f.Value(p.m, tok.dat, true, tok.line))
		case tokenValueRaw:
			out = append(out, p.f.Value(p.m, tok.dat, false, tok.line))
		case tokenSectionStart:
			children, err := p.parseUntil(tok.dat)
			if err != nil {
				return nil, err
			}
			out = append(out, p.f.Iterable(p.m, tok.dat, children, p.file, tok.line))
		case tokenIfStart:
			children, err := p.parseUntil(tok.dat)
			if err != nil {
				return nil, err
			}
			out = append(out, p.f.IfIterable(p.m, tok.dat, children, p.file, tok.line))
		case tokenInvertedStart:
			children, err := p.parseUntil(tok.dat)
			if err != nil {
				return nil, err
			}
			out = append(out, p.f.InvertedIterable(p.m, tok.dat, children, p.file, tok.line))
		case tokenFunctionStart:
			children, err := p.parseUntil(tok.dat)
			if err != nil {
				return nil, err
			}
			out = append(out, p.f.Function(p.m, tok.dat, children, p.file, tok.line))
		case tokenNameStart:
			children, err := p.parseUntil(tok.dat)
			if err != nil {
				return nil, err
			}
			out = append(out, p.f.Name(p.m, tok.dat, children, p.file, tok.line))
		case tokenExtendStart:
			children, err := p.parseUntil(tok.dat)
			if err != nil {
				return nil, err
			}
			code, err := p.f.Extend(p.m, tok.dat, children, p.file, tok.line)
			if err != nil {
				return nil, wrapConstructErr(p.file, tok.line, err)
			}
			out = append(out, code)
		case tokenPartial:
			code, err := p.f.Partial(p.m, tok.dat, p.file, tok.line)
			if err != nil {
				return nil, wrapConstructErr(p.file, tok.line, err)
			}
			out = append(out, code)
		case tokenSectionEnd:
			if tok.dat != name {
				return nil, wrapConstructErr(p.file, tok.line, fmt.Errorf("mismatched close {{/%s}}, expected {{/%s}}", tok.dat, name))
			}
			return out, nil
		}
	}
}

// compact folds adjacent literal Write runs into one node. It deliberately
// stops there: literal text is significant byte-for-byte, so this never
// discards or reshapes whitespace-only runs the way some optimizing
// compactors do.
func compact(codes []Code) []Code {
	out := make([]Code, 0, len(codes))
	for _, c := range codes {
		if wc, ok := c.(*WriteCode); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*WriteCode); ok {
				prev.append(wc.text)
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
