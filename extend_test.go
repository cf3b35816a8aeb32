package mustache

import "testing"

func TestRewriteForExtendSubstitutesAtAnyDepth(t *testing.T) {
	inner := &NameCode{sectionBase{name: "title"}}
	wrapper := &IterableCode{sectionBase{name: "wrap", codes: []Code{inner}}}
	parentCodes := []Code{wrapper, newWriteCode("tail", 1)}

	replacement := &WriteCode{text: []byte("OVR")}
	overrides := map[string]Code{"title": replacement}
	unused := map[string]bool{"title": true}

	rewritten, changed := rewriteForExtend(parentCodes, overrides, unused)
	if !changed {
		t.Fatal("expected a change")
	}
	if len(unused) != 0 {
		t.Fatalf("title should have been consumed, got unused=%v", unused)
	}

	outerIterable, ok := rewritten[0].(*IterableCode)
	if !ok {
		t.Fatalf("rewritten[0] = %T, want *IterableCode", rewritten[0])
	}
	if outerIterable == wrapper {
		t.Fatal("a changed ancestor must not alias the parent's node")
	}
	if len(outerIterable.codes) != 1 || outerIterable.codes[0] != replacement {
		t.Fatalf("inner Name was not substituted: %#v", outerIterable.codes)
	}

	// the parent's own tree must be untouched.
	if wrapper.codes[0] != inner {
		t.Fatal("parent's original tree was mutated")
	}
}

func TestRewriteForExtendSharesUnaffectedSubtrees(t *testing.T) {
	untouched := &IterableCode{sectionBase{name: "other", codes: []Code{newWriteCode("x", 1)}}}
	parentCodes := []Code{untouched}

	rewritten, changed := rewriteForExtend(parentCodes, map[string]Code{"title": newWriteCode("y", 1)}, map[string]bool{"title": true})
	if changed {
		t.Fatal("nothing should have changed")
	}
	if rewritten[0] != untouched {
		t.Fatal("an unaffected subtree should be shared, not copied")
	}
}
