package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	et, err := ParseEntityType("monuments")
	require.NoError(t, err)
	assert.Equal(t, Monuments, et)

	_, err = ParseEntityType("furniture")
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestResolveMonumentCategories(t *testing.T) {
	single, err := Resolve(Monuments, "single")
	require.NoError(t, err)
	assert.Equal(t, "single_monuments", single.Table)
	assert.Equal(t, "Одиночные", single.Label)
	assert.False(t, single.Shared)

	exclusive, err := Resolve(Monuments, "exclusive")
	require.NoError(t, err)
	assert.Equal(t, "products", exclusive.Table)
	assert.Equal(t, "Эксклюзивные", exclusive.Label)
	assert.True(t, exclusive.Shared)

	_, err = Resolve(Monuments, "nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestResolveSingleTableEntities(t *testing.T) {
	for _, tc := range []struct {
		et    EntityType
		key   string
		label string
	}{
		{Fences, "granite", "Гранитные ограды"},
		{Accessories, "vases", "Вазы"},
		{Landscape, "tiles", "Плитка"},
	} {
		cat, err := Resolve(tc.et, tc.key)
		require.NoError(t, err)
		assert.Equal(t, tc.label, cat.Label)
		assert.Equal(t, string(tc.et), cat.Table)
	}
}

func TestResolveByLabel(t *testing.T) {
	cat, ok := ResolveByLabel(Monuments, "Двойные")
	require.True(t, ok)
	assert.Equal(t, "double", cat.Key)

	_, ok = ResolveByLabel(Monuments, "Несуществующие")
	assert.False(t, ok)
}

func TestKeyAndLabelStayPaired(t *testing.T) {
	// Every key must resolve back to itself through its label; the legacy
	// parallel maps used to drift here.
	for _, et := range []EntityType{Monuments, Fences, Accessories, Landscape} {
		for _, cat := range Categories(et) {
			byLabel, ok := ResolveByLabel(et, cat.Label)
			require.True(t, ok, "label %s of %s", cat.Label, et)
			assert.Equal(t, cat.Key, byLabel.Key)
		}
	}
}

func TestSingleTable(t *testing.T) {
	table, err := Table(Campaigns)
	require.NoError(t, err)
	assert.Equal(t, "campaigns", table)

	_, err = Table(Monuments)
	assert.Error(t, err)
}

func TestHasCategories(t *testing.T) {
	assert.True(t, HasCategories(Monuments))
	assert.True(t, HasCategories(Fences))
	assert.False(t, HasCategories(Blogs))
	assert.False(t, HasCategories(Campaigns))
}

func TestMonumentTablesCoverElevenCategories(t *testing.T) {
	cats := MonumentTables()
	assert.Len(t, cats, 11)

	tables := map[string]struct{}{}
	for _, c := range cats {
		tables[c.Table] = struct{}{}
	}
	assert.Contains(t, tables, "products")
	assert.Contains(t, tables, "single_monuments")
}

func TestResolveResource(t *testing.T) {
	table, err := ResolveResource("exclusive-monuments")
	require.NoError(t, err)
	assert.Equal(t, "products", table)

	table, err = ResolveResource("fences")
	require.NoError(t, err)
	assert.Equal(t, "fences", table)

	_, err = ResolveResource("reviews")
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}
