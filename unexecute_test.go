package mustache

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
)

func TestUnexecuteGreedyIterationStopsOnFirstEmptyBinding(t *testing.T) {
	// A section body that binds nothing per iteration (pure literal)
	// never satisfies the "at least one binding" success rule, so the
	// very first attempt rewinds position and the loop stops without
	// ever populating xs — leaving the trailing text unconsumed, which
	// fails the template-level match.
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "greedy.mustache", "{{#xs}}X{{/xs}}", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpl.Unexecute("XXX"); err == nil {
		t.Fatal("expected a mismatch: a no-binding body can never be recovered")
	}
}

func TestUnexecuteGreedyIterationAccumulatesBoundIterations(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "greedy2.mustache", "{{#xs}}[{{v}}]{{/xs}}", false)
	if err != nil {
		t.Fatal(err)
	}
	scope, err := tmpl.Unexecute("[a][b][c]")
	if err != nil {
		t.Fatal(err)
	}
	xs, _ := scope.Lookup("xs")
	list, ok := xs.([]interface{})
	if !ok || len(list) != 3 {
		t.Fatalf("xs = %#v, want 3 bound iterations", xs)
	}
}

func TestUnexecuteFunctionBackrefRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "fnrt.mustache", "{{_shout}}hello{{/shout}}", false)
	if err != nil {
		t.Fatal(err)
	}
	scope, err := tmpl.Unexecute("HELLO!")
	if err != nil {
		t.Fatal(err)
	}
	back, err := scope.Lookup("shout")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := back.(*functionBackref); !ok {
		t.Fatalf("shout = %#v, want *functionBackref", back)
	}
}

func TestUnexecuteInvertedSectionOnlyRecordsFalseOnMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "inverted.mustache", "{{^empty}}none{{/empty}}", false)
	if err != nil {
		t.Fatal(err)
	}

	// A present, non-empty "empty" skips the inverted body entirely, so
	// rendering it produces "". Unexecuting "" must not fabricate
	// empty = false: nothing was recovered, so the name stays unbound.
	scope, err := tmpl.Unexecute("")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := scope.Lookup("empty"); v != nil {
		t.Fatalf("empty = %#v, want nil (unrecovered, not false)", v)
	}

	// An absent/empty "empty" runs the inverted body, so rendering it
	// produces "none". Unexecuting "none" recovers empty = false, and
	// re-executing that scope must reproduce "none".
	scope, err = tmpl.Unexecute("none")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := scope.Lookup("empty"); v != false {
		t.Fatalf("empty = %#v, want false", v)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, scope); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "none" {
		t.Fatalf("round trip = %q, want %q", buf.String(), "none")
	}
}

func TestUnexecuteValueDecodesEntities(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "decode.mustache", "{{v}}", false)
	if err != nil {
		t.Fatal(err)
	}
	scope, err := tmpl.Unexecute("&lt;b&gt;")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := scope.Lookup("v"); v != "<b>" {
		t.Fatalf("v = %q, want %q", v, "<b>")
	}
}
