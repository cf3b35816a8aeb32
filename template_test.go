package mustache

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
)

func render(t *testing.T, tmpl *Template, data interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return buf.String()
}

func TestExecuteValueScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "greet.mustache", "Hello {{name}}!", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, tmpl, map[string]interface{}{"name": "world"}); got != "Hello world!" {
		t.Fatalf("got %q", got)
	}

	scope, err := tmpl.Unexecute("Hello world!")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := scope.Lookup("name"); v != "world" {
		t.Fatalf("unexecute got name=%v", v)
	}
}

func TestExecuteIterableScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "xs.mustache", "{{#xs}}[{{v}}]{{/xs}}", false)
	if err != nil {
		t.Fatal(err)
	}
	scope := map[string]interface{}{
		"xs": []interface{}{
			map[string]interface{}{"v": "a"},
			map[string]interface{}{"v": "b"},
		},
	}
	if got := render(t, tmpl, scope); got != "[a][b]" {
		t.Fatalf("got %q", got)
	}

	result, err := tmpl.Unexecute("[a][b]")
	if err != nil {
		t.Fatal(err)
	}
	xs, _ := result.Lookup("xs")
	list, ok := xs.([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("unexecute xs = %#v", xs)
	}
}

func TestExecuteInvertedScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "inv.mustache", "{{^empty}}none{{/empty}}", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, tmpl, map[string]interface{}{"empty": false}); got != "none" {
		t.Fatalf("got %q", got)
	}
	scope := map[string]interface{}{
		"empty": []interface{}{map[string]interface{}{}},
	}
	if got := render(t, tmpl, scope); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestExecuteExtendScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "P.mustache", "<<{{$title}}def{{/title}}>>")
	writeFile(t, fs, "C.mustache", "{{<P}}{{$title}}OVR{{/title}}{{/P}}")

	tmpl, err := Parse(fs, "C.mustache")
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, tmpl, map[string]interface{}{}); got != "<<OVR>>" {
		t.Fatalf("got %q", got)
	}
}

func TestExecutePartialScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "A.mustache", "{{>B}}")
	writeFile(t, fs, "B.mustache", "Hi {{who}}")

	tmpl, err := Parse(fs, "A.mustache")
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, tmpl, map[string]interface{}{"who": "X"}); got != "Hi X" {
		t.Fatalf("got %q", got)
	}

	scope, err := tmpl.Unexecute("Hi X")
	if err != nil {
		t.Fatal(err)
	}
	b, err := scope.Lookup("B")
	if err != nil {
		t.Fatal(err)
	}
	sub, ok := b.(*Scope)
	if !ok {
		t.Fatalf("B = %#v, want *Scope", b)
	}
	if who, _ := sub.Lookup("who"); who != "X" {
		t.Fatalf("who = %v", who)
	}
}

func TestExecuteDottedNameScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl, err := ParseString(fs, "dotted.mustache", "{{a.b}}", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := render(t, tmpl, map[string]interface{}{"a": map[string]interface{}{"b": "z"}}); got != "z" {
		t.Fatalf("got %q", got)
	}
	scope, err := tmpl.Unexecute("z")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := scope.Lookup("a")
	sub, ok := a.(*Scope)
	if !ok {
		t.Fatalf("a = %#v", a)
	}
	if b, _ := sub.Lookup("b"); b != "z" {
		t.Fatalf("b = %v", b)
	}
}

func TestExtendUnusedOverrideDebug(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "P2.mustache", "<<{{$title}}def{{/title}}>>")
	writeFile(t, fs, "C2.mustache", "{{<P2}}{{$title}}OVR{{/title}}{{$subtitle}}EXTRA{{/subtitle}}{{/P2}}")

	if _, err := ParseDebug(fs, "C2.mustache"); err == nil {
		t.Fatal("expected an unused-override error in debug mode")
	}
}

func writeFile(t *testing.T, fs afero.Fs, name, contents string) {
	t.Helper()
	if err := afero.WriteFile(fs, name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
