package mustache

import "testing"

func TestScopeDottedLookup(t *testing.T) {
	root := NewScope(nil)
	root.PutDotted("user.name", "ada")
	root.PutDotted("user.address.city", "london")

	got, err := root.Lookup("user.name")
	if err != nil || got != "ada" {
		t.Fatalf("Lookup(user.name) = %v, %v", got, err)
	}
	got, err = root.Lookup("user.address.city")
	if err != nil || got != "london" {
		t.Fatalf("Lookup(user.address.city) = %v, %v", got, err)
	}
	got, err = root.Lookup("user.address.country")
	if err != nil || got != nil {
		t.Fatalf("Lookup on missing leaf = %v, %v, want nil, nil", got, err)
	}
}

func TestScopeShadowing(t *testing.T) {
	parent := NewScope(nil)
	parent.Put("name", "parent")
	child := parent.child()
	child.Put("name", "child")

	if v, _ := child.Lookup("name"); v != "child" {
		t.Fatalf("child shadow failed, got %v", v)
	}
	if v, _ := parent.Lookup("name"); v != "parent" {
		t.Fatalf("parent leaked shadow, got %v", v)
	}
}

func TestScopeOfMap(t *testing.T) {
	s := ScopeOf(map[string]interface{}{"a": 1})
	if v, _ := s.Lookup("a"); v != 1 {
		t.Fatalf("got %v", v)
	}
}

func TestScopeLookupStructuralErrorReportsBreadcrumb(t *testing.T) {
	root := NewScope(nil)
	root.PutDotted("user.age", 36)

	_, err := root.Lookup("user.age.sub")
	if err == nil {
		t.Fatal("expected a structural lookup error")
	}
	lookupErr, ok := err.(*ErrScopeLookup)
	if !ok {
		t.Fatalf("err = %#v, want *ErrScopeLookup", err)
	}
	if got := lookupErr.Error(); got != "mustache: lookup failed at /user.age.sub: cannot select \"sub\" on a int" {
		t.Fatalf("got %q", got)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    interface{}
		want bool
	}{
		{nil, false},
		{"", false},
		{"x", true},
		{0, false},
		{1, true},
		{false, false},
		{true, true},
		{[]int{}, false},
		{[]int{1}, true},
	}
	for _, c := range cases {
		if got := truthy(c.v); got != c.want {
			t.Errorf("truthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}
