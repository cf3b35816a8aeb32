// Command mustache compiles a template and renders it against a JSON
// context, exercising the library's whole pipeline end to end.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/spf13/afero"

	"github.com/ashokayengar/mustache"
)

type args struct {
	Template string `arg:"positional,required" help:"path to the template file"`
	Data     string `arg:"--data" help:"path to a JSON context file; defaults to stdin"`
	Identity bool   `arg:"--identity" help:"print the template's own source instead of rendering"`
	Debug    bool   `arg:"--debug" help:"fail construction on unused Extend overrides"`
	Cached   bool   `arg:"--cached" help:"reuse compiled templates across runs in this process"`
}

func (args) Description() string {
	return "render a Mustache-family template against a JSON context"
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a); err != nil {
		fmt.Fprintln(os.Stderr, "mustache:", err)
		os.Exit(1)
	}
}

func run(a args) error {
	fs := afero.NewOsFs()

	opts := []mustache.Option{mustache.WithDebug(a.Debug)}
	if a.Cached {
		opts = append(opts, mustache.WithCache(mustache.Cached))
	}
	t, err := mustache.ParseWith(fs, a.Template, opts...)
	if err != nil {
		return err
	}

	if a.Identity {
		return t.Identity(os.Stdout)
	}

	data, err := readData(fs, a.Data)
	if err != nil {
		return err
	}
	scope, err := mustache.ScopeFromJSON(data)
	if err != nil {
		return err
	}
	return t.Execute(os.Stdout, scope)
}

func readData(fs afero.Fs, path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return afero.ReadFile(fs, path)
}
