package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold applies Unicode case folding. A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// IsWildcard reports whether a facet value selects everything
func IsWildcard(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, All)
}

// Matches reports whether item satisfies every active facet and the search text
func Matches(item Item, q Query) bool {
	for name, want := range q.Facets {
		if IsWildcard(want) {
			continue
		}
		if item.FacetValue(name) != want {
			return false
		}
	}

	text := strings.TrimSpace(q.Text)
	if text == "" {
		return true
	}
	needle := fold(text)
	for _, field := range item.SearchFields() {
		if strings.Contains(fold(field), needle) {
			return true
		}
	}
	return false
}

// Filter returns the items matching q in their original order
func Filter[T Item](items []T, q Query) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the item with the given key
func Find[T Item](items []T, key int) (T, bool) {
	for _, it := range items {
		if it.Key() == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Collection holds an immutable list of items and the query applied to it
type Collection[T Item] struct {
	items    []T
	facets   []FacetSpec
	query    Query
	revision int
}

// NewCollection creates a collection; items are copied and never mutated
func NewCollection[T Item](items []T, facets ...FacetSpec) *Collection[T] {
	own := make([]T, len(items))
	copy(own, items)
	c := &Collection[T]{
		items:  own,
		facets: facets,
		query:  Query{Facets: make(map[string]string, len(facets))},
	}
	for _, f := range facets {
		c.query.Facets[f.Name] = All
	}
	return c
}

// View returns the filtered view for the current query
func (c *Collection[T]) View() []T {
	return Filter(c.items, c.query)
}

// Empty reports whether the filtered view has no items
func (c *Collection[T]) Empty() bool {
	for _, it := range c.items {
		if Matches(it, c.query) {
			return false
		}
	}
	return true
}

// Query returns a copy of the current query
func (c *Collection[T]) Query() Query {
	q := Query{Text: c.query.Text, Facets: make(map[string]string, len(c.query.Facets))}
	for k, v := range c.query.Facets {
		q.Facets[k] = v
	}
	return q
}

// Facets returns the facet specs of this collection
func (c *Collection[T]) Facets() []FacetSpec {
	return c.facets
}

// Revision changes every time the query changes, so dependants such as a
// carousel can tell that the filtered list identity changed
func (c *Collection[T]) Revision() int {
	return c.revision
}

// Text returns the current search text
func (c *Collection[T]) Text() string {
	return c.query.Text
}

// SetText updates the search text
func (c *Collection[T]) SetText(text string) bool {
	if c.query.Text == text {
		return false
	}
	c.query.Text = text
	c.revision++
	return true
}

// Facet returns the selected value of a facet
func (c *Collection[T]) Facet(name string) string {
	if v, ok := c.query.Facets[name]; ok {
		return v
	}
	return All
}

// SetFacet selects a facet value; wildcard spellings are normalised to All
func (c *Collection[T]) SetFacet(name, value string) bool {
	if IsWildcard(value) {
		value = All
	}
	if c.Facet(name) == value {
		return false
	}
	c.query.Facets[name] = value
	c.revision++
	return true
}

// CycleFacet moves a facet selection delta steps through its options
func (c *Collection[T]) CycleFacet(name string, delta int) bool {
	spec, ok := c.spec(name)
	if !ok || len(spec.Options) == 0 {
		return false
	}
	current := 0
	for i, opt := range spec.Options {
		if opt == c.Facet(name) {
			current = i
			break
		}
	}
	n := len(spec.Options)
	next := ((current+delta)%n + n) % n
	return c.SetFacet(name, spec.Options[next])
}

// ResetFacets sets every facet back to All
func (c *Collection[T]) ResetFacets() bool {
	changed := false
	for _, f := range c.facets {
		if c.SetFacet(f.Name, All) {
			changed = true
		}
	}
	return changed
}

// Reset clears the search text and every facet
func (c *Collection[T]) Reset() bool {
	facets := c.ResetFacets()
	text := c.SetText("")
	return facets || text
}

func (c *Collection[T]) spec(name string) (FacetSpec, bool) {
	for _, f := range c.facets {
		if f.Name == name {
			return f, true
		}
	}
	return FacetSpec{}, false
}
