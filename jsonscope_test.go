package mustache

import "testing"

func TestScopeFromJSONObject(t *testing.T) {
	s, err := ScopeFromJSON([]byte(`{"name":"ada","age":36}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Lookup("name"); v != "ada" {
		t.Fatalf("name = %v", v)
	}
	if v, _ := s.Lookup("age"); v != float64(36) {
		t.Fatalf("age = %v", v)
	}
}

func TestScopeFromJSONNestedAndArrayOfObjects(t *testing.T) {
	s, err := ScopeFromJSON([]byte(`{"users":[{"name":"a"},{"name":"b"}],"meta":{"count":2}}`))
	if err != nil {
		t.Fatal(err)
	}
	users, _ := s.Lookup("users")
	list, ok := users.([]*Scope)
	if !ok || len(list) != 2 {
		t.Fatalf("users = %#v", users)
	}
	if v, _ := list[0].Lookup("name"); v != "a" {
		t.Fatalf("users[0].name = %v", v)
	}
	if v, _ := s.Lookup("meta.count"); v != float64(2) {
		t.Fatalf("meta.count = %v", v)
	}
}

func TestScopeFromJSONArrayOfScalars(t *testing.T) {
	s, err := ScopeFromJSON([]byte(`{"tags":["a","b","c"]}`))
	if err != nil {
		t.Fatal(err)
	}
	tags, _ := s.Lookup("tags")
	list, ok := tags.([]interface{})
	if !ok || len(list) != 3 {
		t.Fatalf("tags = %#v", tags)
	}
}

func TestScopeFromJSONInvalid(t *testing.T) {
	if _, err := ScopeFromJSON([]byte(`not json`)); err == nil {
		t.Fatal("expected an error")
	}
}
