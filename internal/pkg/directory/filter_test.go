package directory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	facets Facets
}

func (f fakeRecord) Facets() Facets { return f.facets }

func doctor(key, name, district, specialization string) fakeRecord {
	return fakeRecord{facets: Facets{
		Key:             key,
		Name:            name,
		District:        district,
		Specializations: []string{specialization},
		SpecialtyMatch:  MatchExact,
	}}
}

func hospital(key, name, district string, specialties ...string) fakeRecord {
	return fakeRecord{facets: Facets{
		Key:             key,
		Name:            name,
		District:        district,
		Specializations: specialties,
		SpecialtyMatch:  MatchContains,
	}}
}

func sampleRecords() []fakeRecord {
	return []fakeRecord{
		doctor("d1", "Dr. Priya Sharma", "Mysuru", "Cardiology"),
		doctor("d2", "Dr. Arjun Rao", "Bengaluru", "Neurology"),
		doctor("d3", "Dr. Meera Iyer", "mysuru", "cardiology"),
		doctor("d4", "Dr. Kiran Shetty", "Udupi", "ENT"),
		hospital("h1", "City Heart Hospital", "MYSURU", "Cardiology", "ENT"),
		hospital("h2", "Lakeview Clinic", "Hubli", "General Medicine"),
		hospital("h3", "Coastal Care", "Udupi"),
	}
}

func keys(records []fakeRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.facets.Key)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Run("No predicates passes everything through", func(t *testing.T) {
		records := sampleRecords()
		assert.Equal(t, keys(records), keys(Filter(records, Criteria{})))
	})

	t.Run("Search is a case insensitive substring of the name", func(t *testing.T) {
		result := Filter(sampleRecords(), Criteria{Search: "  sHaRmA "})
		assert.Equal(t, []string{"d1"}, keys(result))
	})

	t.Run("District ignores case but must be equal", func(t *testing.T) {
		result := Filter(sampleRecords(), Criteria{District: "Mysuru"})
		assert.Equal(t, []string{"d1", "d3", "h1"}, keys(result))

		result = Filter(sampleRecords(), Criteria{District: "Mys"})
		assert.Empty(t, result)
	})

	t.Run("Doctor specialization is an exact match", func(t *testing.T) {
		records := []fakeRecord{
			doctor("d1", "A", "Mysuru", "Cardiology"),
			doctor("d2", "B", "Mysuru", "Pediatric Cardiology"),
		}
		result := Filter(records, Criteria{Specialization: "CARDIOLOGY"})
		assert.Equal(t, []string{"d1"}, keys(result))
	})

	t.Run("Hospital specialty matches any element by substring", func(t *testing.T) {
		records := []fakeRecord{
			hospital("h1", "A", "Mysuru", "Cardiology", "ENT"),
			hospital("h2", "B", "Mysuru", "Pediatric Cardiology"),
			hospital("h3", "C", "Mysuru", "Dermatology"),
			hospital("h4", "D", "Mysuru"),
		}
		result := Filter(records, Criteria{Specialization: "cardiology"})
		assert.Equal(t, []string{"h1", "h2"}, keys(result))
	})

	t.Run("Predicates combine with AND", func(t *testing.T) {
		result := Filter(sampleRecords(), Criteria{Search: "dr.", District: "mysuru", Specialization: "Cardiology"})
		assert.Equal(t, []string{"d1", "d3"}, keys(result))
	})

	t.Run("Source slice is left untouched", func(t *testing.T) {
		records := sampleRecords()
		before := keys(records)
		_ = Filter(records, Criteria{District: "Udupi"})
		assert.Equal(t, before, keys(records))
	})
}

func TestFilterProperties(t *testing.T) {
	searches := []string{"", "dr", "hospital", "zzz"}
	districts := append([]string{""}, Districts...)
	specializations := []string{"", "Cardiology", "ENT", "medicine"}

	for _, search := range searches {
		for _, district := range districts {
			for _, specialization := range specializations {
				criteria := Criteria{Search: search, District: district, Specialization: specialization}
				name := fmt.Sprintf("%q/%q/%q", search, district, specialization)
				t.Run(name, func(t *testing.T) {
					source := sampleRecords()
					once := Filter(source, criteria)

					sourceKeys := keys(source)
					for _, record := range once {
						assert.Contains(t, sourceKeys, record.facets.Key, "filtered record must come from the source")
						assert.True(t, criteria.Matches(record.facets), "filtered record must satisfy every predicate")
					}

					twice := Filter(once, criteria)
					assert.Equal(t, keys(once), keys(twice), "filtering must be idempotent")
				})
			}
		}
	}
}

func TestFilterScenarioSearchSharma(t *testing.T) {
	records := []fakeRecord{doctor("priya", "Dr. Priya Sharma", "Mysuru", "Cardiology")}
	for i := 0; i < 9; i++ {
		records = append(records, doctor(fmt.Sprintf("other-%d", i), fmt.Sprintf("Dr. Other %d", i), "Udupi", "ENT"))
	}

	result := Filter(records, Criteria{Search: "Sharma"})
	require.Len(t, result, 1)
	assert.Equal(t, "priya", result[0].facets.Key)
}

func TestCriteriaActive(t *testing.T) {
	assert.False(t, Criteria{}.Active())
	assert.False(t, Criteria{Search: "   "}.Active())
	assert.True(t, Criteria{Search: "a"}.Active())
	assert.True(t, Criteria{District: "Udupi"}.Active())
	assert.True(t, Criteria{Specialization: "ENT"}.Active())
}

func TestIsKnownDistrict(t *testing.T) {
	assert.True(t, IsKnownDistrict("Mysuru"))
	assert.True(t, IsKnownDistrict("shivamogga"))
	assert.False(t, IsKnownDistrict("Chennai"))
	assert.False(t, IsKnownDistrict(""))
}
