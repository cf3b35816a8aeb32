package mustache

import "testing"

func BenchmarkBreadcrumbString(b *testing.B) {
	bc := breadcrumbFor("foo.bar.baz")
	for i := 0; i < b.N; i++ {
		_ = bc.String()
	}
}

func TestBreadcrumbFor(t *testing.T) {
	if got := breadcrumbFor("a.b.c").String(); got != "/a.b.c" {
		t.Fatalf("got %q", got)
	}
	if got := breadcrumbFor(rootKey).String(); got != "/" {
		t.Fatalf("got %q", got)
	}
}
