package mustache

import (
	"github.com/goccy/go-json"
)

// ScopeFromJSON decodes a JSON document into a *Scope: objects become
// nested scopes, arrays become []*Scope (or, for an array of scalars,
// a plain []interface{} left for a later Iterable coercion to wrap per
// element), and everything else is stored as its decoded Go value.
func ScopeFromJSON(data []byte) (*Scope, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newError("construct", "", 0, err)
	}
	return scopeFromValue(nil, raw), nil
}

func scopeFromValue(parent *Scope, v interface{}) *Scope {
	s := NewScope(parent)
	obj, ok := v.(map[string]interface{})
	if !ok {
		s.values[rootKey] = jsonValue(s, v)
		return s
	}
	for k, val := range obj {
		s.values[k] = jsonValue(s, val)
	}
	return s
}

// jsonValue converts one decoded JSON value into what the engine's Scope
// expects to find: nested objects become *Scope, arrays of objects
// become []*Scope, arrays of scalars stay []interface{}, scalars pass
// through unchanged.
func jsonValue(parent *Scope, v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		return scopeFromValue(parent, x)
	case []interface{}:
		allObjects := len(x) > 0
		for _, el := range x {
			if _, ok := el.(map[string]interface{}); !ok {
				allObjects = false
				break
			}
		}
		if allObjects {
			out := make([]*Scope, len(x))
			for i, el := range x {
				out[i] = scopeFromValue(parent, el)
			}
			return out
		}
		out := make([]interface{}, len(x))
		for i, el := range x {
			out[i] = jsonValue(parent, el)
		}
		return out
	default:
		return x
	}
}
