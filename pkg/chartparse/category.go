package chartparse

import (
	"sort"
	"strings"
)

// Category is an atomic nonterminal (or terminal) name plus a set of
// (feature, value) bindings. A Category with no bindings is
// unconstrained on every feature.
//
// Category is immutable: Extend and ExtendFrom return a new value
// rather than mutating the receiver, following the same
// copy-on-extend discipline the teacher repo uses for its own
// immutable value types.
type Category struct {
	Name     string
	bindings map[string]string
}

// NewCategory builds a Category from a name and an optional binding
// map. The map is copied defensively; the caller's map may be mutated
// afterwards without affecting the returned Category.
func NewCategory(name string, bindings map[string]string) Category {
	return Category{Name: name, bindings: cloneBindings(bindings)}
}

func cloneBindings(b map[string]string) map[string]string {
	if len(b) == 0 {
		return nil
	}
	out := make(map[string]string, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Binding returns the value bound to key and whether it is present.
func (c Category) Binding(key string) (string, bool) {
	v, ok := c.bindings[key]
	return v, ok
}

// Keys returns the sorted feature names bound on c.
func (c Category) Keys() []string {
	keys := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two categories have the same name and exactly
// the same bindings.
func (c Category) Equal(other Category) bool {
	if c.Name != other.Name {
		return false
	}
	if len(c.bindings) != len(other.bindings) {
		return false
	}
	for k, v := range c.bindings {
		if ov, ok := other.bindings[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// LessGeneral reports whether c is strictly less general than other:
// same name, not equal, and c's bindings are a superset of other's.
//
// A category with more bindings describes fewer things, hence is
// "less general". Corresponds to less_general / leq_general in the
// retrieved features.py reference, restricted to the strict case.
func (c Category) LessGeneral(other Category) bool {
	if c.Name != other.Name {
		return false
	}
	if c.Equal(other) {
		return false
	}
	for k, v := range other.bindings {
		if cv, ok := c.bindings[k]; !ok || cv != v {
			return false
		}
	}
	return true
}

// LeqGeneral reports whether c is less general than or equal to
// other (same name, and c's bindings are a superset of other's).
func (c Category) LeqGeneral(other Category) bool {
	return c.Equal(other) || c.LessGeneral(other)
}

// Compatible reports whether two categories could describe the same
// constituent: same name and no feature bound to conflicting atomic
// values. A feature missing from either side is never a conflict.
func (c Category) Compatible(other Category) bool {
	if c.Name != other.Name {
		return false
	}
	for k, v := range c.bindings {
		if ov, ok := other.bindings[k]; ok && ov != v {
			return false
		}
	}
	return true
}

// Extend returns a copy of c with key bound to value, overwriting any
// existing binding for key.
func (c Category) Extend(key, value string) Category {
	out := cloneBindings(c.bindings)
	if out == nil {
		out = make(map[string]string, 1)
	}
	out[key] = value
	return Category{Name: c.Name, bindings: out}
}

// ExtendFrom copies, for each key in keys, the binding key -> source's
// value for key, when source has one. Keys source does not bind are
// left untouched on c. Corresponds to extendc in the reference
// implementation.
func (c Category) ExtendFrom(keys []string, source Category) Category {
	result := c
	for _, k := range keys {
		if v, ok := source.Binding(k); ok {
			result = result.Extend(k, v)
		}
	}
	return result
}

// String renders the category in the external grammar-text notation,
// with bindings in sorted key order, e.g. "Np(case:subj,num:sing)".
func (c Category) String() string {
	if len(c.bindings) == 0 {
		return c.Name
	}
	keys := c.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + c.bindings[k]
	}
	return c.Name + "(" + strings.Join(parts, ",") + ")"
}
