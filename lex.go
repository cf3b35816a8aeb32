package mustache

import (
	"bytes"
	"strings"
)

// tokenType enumerates the tag shapes the lexer recognizes.
type tokenType int

const (
	tokenText         tokenType = iota // literal run between tags
	tokenValue                         // {{name}}
	tokenValueRaw                      // {{{name}}} or {{&name}}
	tokenSectionStart                  // {{#name}}
	tokenIfStart                       // {{?name}}
	tokenInvertedStart                 // {{^name}}
	tokenFunctionStart                 // {{_name}}
	tokenPartial                       // {{>name}}
	tokenExtendStart                   // {{<name}}
	tokenNameStart                     // {{$name}}
	tokenSectionEnd                    // {{/name}}
	tokenComment                       // {{! ... }}
	tokenEOF
	tokenError
)

var (
	openDelim   = []byte(`{{`)
	closeDelim  = []byte(`}}`)
	closeDelim3 = []byte(`}}}`)
)

type token struct {
	typ  tokenType
	dat  string
	line int
}

type lexer struct {
	data []byte
	pos  int
	tail int
	line int
	pipe chan token
}

type lexerState func(l *lexer) lexerState

// lex tokenizes data, returning a channel of tokens produced by a
// goroutine running concurrently with the consumer.
func lex(data []byte) chan token {
	l := &lexer{data: data, line: 1, pipe: make(chan token)}
	go l.run()
	return l.pipe
}

func (l *lexer) run() {
	for state := lexText; state != nil; {
		state = state(l)
	}
	close(l.pipe)
}

func (l *lexer) slice() string { return string(l.data[l.tail:l.pos]) }

func (l *lexer) advance() { l.tail = l.pos }

func (l *lexer) emit(typ tokenType) {
	l.pipe <- token{typ: typ, dat: l.slice(), line: l.line}
	l.countNewlines()
	l.advance()
}

func (l *lexer) emitAt(typ tokenType, dat string, line int) {
	l.pipe <- token{typ: typ, dat: dat, line: line}
}

func (l *lexer) countNewlines() {
	l.line += bytes.Count(l.data[l.tail:l.pos], []byte("\n"))
}

func lexText(l *lexer) lexerState {
	for {
		idx := bytes.Index(l.data[l.pos:], openDelim)
		if idx < 0 {
			break
		}
		if idx > 0 {
			l.pos += idx
			l.emit(tokenText)
			continue
		}
		if l.pos > l.tail {
			l.emit(tokenText)
		}
		return lexTag
	}
	l.pos = len(l.data)
	if l.pos > l.tail {
		l.emit(tokenText)
	}
	l.pipe <- token{typ: tokenEOF, line: l.line}
	return nil
}

func lexTag(l *lexer) lexerState {
	startLine := l.line
	l.pos += len(openDelim)
	triple := l.pos < len(l.data) && l.data[l.pos] == '{'
	if triple {
		l.pos++
	}

	closer := closeDelim
	if triple {
		closer = closeDelim3
	}
	end := bytes.Index(l.data[l.pos:], closer)
	if end < 0 {
		l.pipe <- token{typ: tokenError, dat: "unterminated tag", line: startLine}
		return nil
	}
	inner := strings.TrimSpace(string(l.data[l.pos : l.pos+end]))
	l.pos += end + len(closer)
	l.countNewlines()
	l.tail = l.pos

	typ, name := classifyTag(inner, triple)
	if typ == tokenComment {
		return lexText
	}
	l.emitAt(typ, name, startLine)
	return lexText
}

// classifyTag inspects the raw tag interior (sigil plus name) and
// returns the token type and the bare dotted name, sigil stripped.
func classifyTag(inner string, triple bool) (tokenType, string) {
	if triple {
		return tokenValueRaw, inner
	}
	if inner == "" {
		return tokenValue, inner
	}
	switch inner[0] {
	case '&':
		return tokenValueRaw, strings.TrimSpace(inner[1:])
	case '#':
		return tokenSectionStart, strings.TrimSpace(inner[1:])
	case '?':
		return tokenIfStart, strings.TrimSpace(inner[1:])
	case '^':
		return tokenInvertedStart, strings.TrimSpace(inner[1:])
	case '_':
		return tokenFunctionStart, strings.TrimSpace(inner[1:])
	case '>':
		return tokenPartial, strings.TrimSpace(inner[1:])
	case '<':
		return tokenExtendStart, strings.TrimSpace(inner[1:])
	case '$':
		return tokenNameStart, strings.TrimSpace(inner[1:])
	case '/':
		return tokenSectionEnd, strings.TrimSpace(inner[1:])
	case '!':
		return tokenComment, ""
	default:
		return tokenValue, inner
	}
}

func (t tokenType) String() string {
	switch t {
	case tokenText:
		return "text"
	case tokenValue:
		return "value"
	case tokenValueRaw:
		return "valueRaw"
	case tokenSectionStart:
		return "sectionStart"
	case tokenIfStart:
		return "ifStart"
	case tokenInvertedStart:
		return "invertedStart"
	case tokenFunctionStart:
		return "functionStart"
	case tokenPartial:
		return "partial"
	case tokenExtendStart:
		return "extendStart"
	case tokenNameStart:
		return "nameStart"
	case tokenSectionEnd:
		return "sectionEnd"
	case tokenComment:
		return "comment"
	case tokenEOF:
		return "EOF"
	case tokenError:
		return "error"
	default:
		return "?"
	}
}
