package mustache

import "testing"

func TestLexWorks(t *testing.T) {
	const code = `thing {{#foobar}} here {{/foobar}} {{_fn}} bar {{/fn}}{{$title}}{{.}}{{/title}}{{!comment}}{{{raw}}}`
	for tok := range lex([]byte(code)) {
		t.Log(tok)
	}
}

func TestLexValueVsRaw(t *testing.T) {
	toks := collectTokens(`{{name}}{{{name}}}{{&name}}`)
	want := []tokenType{tokenValue, tokenValueRaw, tokenValueRaw, tokenEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].typ != typ {
			t.Fatalf("token %d: got %s want %s", i, toks[i].typ, typ)
		}
	}
}

func TestLexSectionSigils(t *testing.T) {
	toks := collectTokens(`{{#a}}{{/a}}{{?b}}{{/b}}{{^c}}{{/c}}{{<d}}{{/d}}{{$e}}{{/e}}{{>f}}`)
	want := []tokenType{
		tokenSectionStart, tokenSectionEnd,
		tokenIfStart, tokenSectionEnd,
		tokenInvertedStart, tokenSectionEnd,
		tokenExtendStart, tokenSectionEnd,
		tokenNameStart, tokenSectionEnd,
		tokenPartial,
		tokenEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].typ != typ {
			t.Fatalf("token %d: got %s want %s", i, toks[i].typ, typ)
		}
	}
}

func collectTokens(src string) []token {
	var out []token
	for tok := range lex([]byte(src)) {
		out = append(out, tok)
	}
	return out
}
