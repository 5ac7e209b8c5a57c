package filter

// All is the wildcard facet value
const All = "All"

// Item is a record that can be searched and faceted
type Item interface {
	Key() int
	SearchFields() []string
	FacetValue(name string) string
}

// Query holds the search text and the selected value of each facet
type Query struct {
	Text   string
	Facets map[string]string // facet name -> selected value
}

// FacetSpec describes one categorical filter and its selectable values.
// Options[0] is always the wildcard.
type FacetSpec struct {
	Name    string
	Label   string
	Options []string
}

// NewFacetSpec builds a spec, prepending the wildcard when values lack it
func NewFacetSpec(name, label string, values []string) FacetSpec {
	opts := make([]string, 0, len(values)+1)
	opts = append(opts, All)
	for _, v := range values {
		if IsWildcard(v) {
			continue
		}
		opts = append(opts, v)
	}
	return FacetSpec{Name: name, Label: label, Options: opts}
}
