package converter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAttribute is returned by ParseAttributePairs for an item that is
// not of the form name=value.
var ErrInvalidAttribute = errors.New("invalid attribute")

// Attributes is an insertion-ordered set of table attributes. The order is
// kept because it decides the byte layout of the opening <table> tag.
type Attributes struct {
	names  []string
	values map[string]string
}

// NewAttributes builds Attributes from alternating name, value arguments.
// A trailing name without a value is stored with an empty value.
func NewAttributes(pairs ...string) *Attributes {
	a := &Attributes{values: make(map[string]string, (len(pairs)+1)/2)}
	for i := 0; i < len(pairs); i += 2 {
		v := ""
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		a.Set(pairs[i], v)
	}
	return a
}

// ParseAttributePairs builds Attributes from "name=value" items, keeping
// their order. Double quotes around the value are removed.
func ParseAttributePairs(items []string) (*Attributes, error) {
	a := NewAttributes()
	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q (want name=value)", ErrInvalidAttribute, item)
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		a.Set(name, value)
	}
	return a, nil
}

// Set stores value under name. An existing name keeps its position.
func (a *Attributes) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether name is set.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Each calls fn for every attribute in insertion order.
func (a *Attributes) Each(fn func(name, value string)) {
	if a == nil {
		return
	}
	for _, name := range a.names {
		fn(name, a.values[name])
	}
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (a *Attributes) Clone() *Attributes {
	c := NewAttributes()
	a.Each(c.Set)
	return c
}
