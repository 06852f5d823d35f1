package catalog

import "fmt"

// byID indexes the categories for O(1) lookup.  Built once at init; the
// pointers reference entries of the categories slice, so both views observe
// the same immutable records.
var byID map[string]*CaseCategory

func init() {
	byID = make(map[string]*CaseCategory, len(categories))
	for i := range categories {
		c := &categories[i]
		if err := c.validate(); err != nil {
			panic(fmt.Sprintf("catalog: invalid reference data: %v", err))
		}
		if _, dup := byID[c.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate category id %q", c.ID))
		}
		byID[c.ID] = c
	}
}

// All returns the categories in declaration order.  The returned slice is
// freshly allocated on every call; the pointed-to records are shared and must
// be treated as read-only.
func All() []*CaseCategory {
	out := make([]*CaseCategory, len(categories))
	for i := range categories {
		out[i] = &categories[i]
	}
	return out
}

// ByID returns the category with the given id, or (nil, false) when absent.
func ByID(id string) (*CaseCategory, bool) {
	c, ok := byID[id]
	return c, ok
}

// Len returns the number of categories in the catalog.
func Len() int { return len(categories) }
