package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzhan/career-compass/internal/types"
)

func TestDefault_AllEntriesComplete(t *testing.T) {
	profiles := Default()

	require.NotEmpty(t, profiles)
	for _, profile := range profiles {
		assert.NotEmpty(t, profile.ID)
		assert.NotEmpty(t, profile.Name)
		assert.False(t, profile.Ideal.IsEmpty(), "field %s has no ideal vector", profile.ID)
		for category, score := range profile.Ideal {
			assert.GreaterOrEqual(t, score, 0.0, "field %s category %s", profile.ID, category)
			assert.LessOrEqual(t, score, 100.0, "field %s category %s", profile.ID, category)
		}
	}
}

func TestDefault_UniqueIDs(t *testing.T) {
	profiles := Default()

	seen := make(map[string]bool)
	for _, profile := range profiles {
		assert.False(t, seen[profile.ID], "duplicate field id %s", profile.ID)
		seen[profile.ID] = true
	}
}

func TestDefault_BigFiveCoverage(t *testing.T) {
	for _, profile := range Default() {
		for _, category := range types.BigFiveCategories() {
			assert.True(t, profile.Ideal.Has(category), "field %s missing %s", profile.ID, category)
		}
	}
}

func TestDefault_ReturnsCopies(t *testing.T) {
	first := Default()
	first[0].Ideal[types.CategoryOpenness] = -1
	first[0].Skills[0] = "mutated"

	second := Default()

	assert.NotEqual(t, -1.0, second[0].Ideal[types.CategoryOpenness])
	assert.NotEqual(t, "mutated", second[0].Skills[0])
}

func TestByID(t *testing.T) {
	profiles := Default()

	found := ByID(profiles, "software-engineering")
	require.NotNil(t, found)
	assert.Equal(t, "Software Engineering", found.Name)

	assert.Nil(t, ByID(profiles, "no-such-field"))
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `{
		"fields": [
			{
				"id": "astronomy",
				"name": "Astronomy",
				"demand_level": "low",
				"ideal": {"openness": 95, "conscientiousness": 80}
			}
		]
	}`)

	profiles, err := Load(path)

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "astronomy", profiles[0].ID)
	assert.Equal(t, 95.0, profiles[0].Ideal[types.CategoryOpenness])
}

func TestLoad_MissingIDFailsSchema(t *testing.T) {
	path := writeCatalogFile(t, `{"fields": [{"name": "Nameless"}]}`)

	_, err := Load(path)

	require.Error(t, err)
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestLoad_IdealOutOfRangeFailsSchema(t *testing.T) {
	path := writeCatalogFile(t, `{
		"fields": [{"id": "bad", "name": "Bad", "ideal": {"openness": 140}}]
	}`)

	_, err := Load(path)

	require.Error(t, err)
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestLoad_DuplicateIDs(t *testing.T) {
	path := writeCatalogFile(t, `{
		"fields": [
			{"id": "dup", "name": "One", "ideal": {"openness": 50}},
			{"id": "dup", "name": "Two", "ideal": {"openness": 60}}
		]
	}`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"fields": [`)

	_, err := Load(path)

	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
}

func TestLoad_EmptyIdealVectorLoads(t *testing.T) {
	// Missing ideal is the ranker's per-entry skip case, not a load failure.
	path := writeCatalogFile(t, `{"fields": [{"id": "sparse", "name": "Sparse"}]}`)

	profiles, err := Load(path)

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.True(t, profiles[0].Ideal.IsEmpty())
}
