// Package orders maps order names to comparators for the CLI and console.
package orders

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/san-kum/dynlist/internal/sortutil"
)

// Natural is the name of the order that leaves the comparator nil, so the
// sort falls back to the elements' intrinsic order.
const Natural = "natural"

type Registry[E cmp.Ordered] struct {
	orders map[string]sortutil.Comparator[E]
}

func NewRegistry[E cmp.Ordered]() *Registry[E] {
	r := &Registry[E]{
		orders: make(map[string]sortutil.Comparator[E]),
	}

	r.orders[Natural] = nil
	r.orders["asc"] = sortutil.Ordered[E]()
	r.orders["desc"] = sortutil.Reverse(sortutil.Ordered[E]())

	return r
}

// Register adds or replaces a named order.
func (r *Registry[E]) Register(name string, compare sortutil.Comparator[E]) {
	r.orders[name] = compare
}

func (r *Registry[E]) Get(name string) (sortutil.Comparator[E], error) {
	compare, ok := r.orders[name]
	if !ok {
		return nil, fmt.Errorf("unknown order: %s (available: %v)", name, r.List())
	}
	return compare, nil
}

func (r *Registry[E]) List() []string {
	names := make([]string, 0, len(r.orders))
	for name := range r.orders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Abs orders integers by absolute value, breaking ties by sign.
func Abs[E ~int | ~int8 | ~int16 | ~int32 | ~int64](a, b E) int {
	if c := cmp.Compare(abs(a), abs(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func abs[E ~int | ~int8 | ~int16 | ~int32 | ~int64](v E) E {
	if v < 0 {
		return -v
	}
	return v
}

// NewIntRegistry returns a registry for ints with the abs order added.
func NewIntRegistry() *Registry[int] {
	r := NewRegistry[int]()
	r.Register("abs", Abs[int])
	return r
}
