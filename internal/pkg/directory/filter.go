package directory

import "strings"

// MatchMode selects how the specialization predicate is compared.
type MatchMode int

const (
	// MatchExact compares the whole value, ignoring case.
	MatchExact MatchMode = iota
	// MatchContains looks for the predicate inside any value, ignoring case.
	MatchContains
)

// Facets are the fields of a record the predicates look at.
type Facets struct {
	Key             string
	Name            string
	District        string
	Specializations []string
	SpecialtyMatch  MatchMode
}

// Record is anything that can be listed in a directory.
type Record interface {
	Facets() Facets
}

// Criteria is the set of predicates applied to a directory. An empty field
// lets every record through.
type Criteria struct {
	Search         string `json:"search"`
	District       string `json:"district"`
	Specialization string `json:"specialization"`
}

// Active reports whether at least one predicate is set.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Search) != "" || c.District != "" || c.Specialization != ""
}

// Matches reports whether f satisfies every predicate in c.
func (c Criteria) Matches(f Facets) bool {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	if search != "" && !strings.Contains(strings.ToLower(f.Name), search) {
		return false
	}

	if c.District != "" && !strings.EqualFold(f.District, c.District) {
		return false
	}

	if c.Specialization != "" && !matchSpecialization(f, c.Specialization) {
		return false
	}

	return true
}

func matchSpecialization(f Facets, want string) bool {
	want = strings.ToLower(want)
	for _, value := range f.Specializations {
		value = strings.ToLower(value)
		switch f.SpecialtyMatch {
		case MatchContains:
			if strings.Contains(value, want) {
				return true
			}
		default:
			if value == want {
				return true
			}
		}
	}
	return false
}

// Filter returns the records satisfying every predicate in c, in source
// order. The source slice is never modified.
func Filter[T Record](records []T, c Criteria) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if c.Matches(record.Facets()) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
