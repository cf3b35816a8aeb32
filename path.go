package mustache

import (
	"bytes"
	"fmt"
)

// breadcrumb renders a dotted selector as the "/.foo.bar.baz" notation
// used in diagnostics.
type breadcrumb []string

func breadcrumbFor(name string) breadcrumb {
	if name == "" || name == rootKey {
		return breadcrumb{}
	}
	return breadcrumb(splitDotted(name))
}

func splitDotted(name string) []string {
	var out []string
	start := 0
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			out = append(out, name[start:i])
			start = i + 1
		}
	}
	out = append(out, name[start:])
	return out
}

func (b breadcrumb) String() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "/")
	for i, part := range b {
		if i > 0 {
			fmt.Fprint(&buf, ".")
		}
		fmt.Fprint(&buf, part)
	}
	return buf.String()
}
