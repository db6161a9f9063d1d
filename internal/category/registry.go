package category

import (
	"errors"
	"fmt"
)

// EntityType identifies one logical catalog resource.
type EntityType string

const (
	Monuments   EntityType = "monuments"
	Fences      EntityType = "fences"
	Accessories EntityType = "accessories"
	Landscape   EntityType = "landscape"
	Campaigns   EntityType = "campaigns"
	Blogs       EntityType = "blogs"
)

var (
	ErrUnknownEntityType = errors.New("unknown_entity_type")
	ErrUnknownCategory   = errors.New("unknown_category")
)

// Category binds a routing key to the physical table it lives in and the
// canonical display label stored in that table's category column. Key and
// label are deliberately kept in one place: the legacy system maintained
// parallel key->table and key->label maps that could drift apart.
type Category struct {
	Key   string
	Label string
	Table string

	// Shared marks categories stored in a table that also holds rows of
	// other product lines. Lookups in a shared table must always filter
	// by label, otherwise rows leak across logical categories.
	Shared bool
}

// Monument sub-categories. "exclusive" lives in the legacy products table
// and is disambiguated only by its label.
var monumentCategories = []Category{
	{Key: "single", Label: "Одиночные", Table: "single_monuments"},
	{Key: "double", Label: "Двойные", Table: "double_monuments"},
	{Key: "cheap", Label: "Недорогие", Table: "cheap_monuments"},
	{Key: "cross", Label: "В виде креста", Table: "cross_monuments"},
	{Key: "heart", Label: "В виде сердца", Table: "heart_monuments"},
	{Key: "composite", Label: "Составные", Table: "composite_monuments"},
	{Key: "europe", Label: "Европейские", Table: "europe_monuments"},
	{Key: "artistic", Label: "Художественная резка", Table: "artistic_monuments"},
	{Key: "tree", Label: "В виде дерева", Table: "tree_monuments"},
	{Key: "complex", Label: "Мемориальные комплексы", Table: "complex_monuments"},
	{Key: "exclusive", Label: "Эксклюзивные", Table: "products", Shared: true},
}

var fenceCategories = []Category{
	{Key: "granite", Label: "Гранитные ограды", Table: "fences"},
	{Key: "metal", Label: "Металлические ограды", Table: "fences"},
	{Key: "polymer", Label: "С полимерным покрытием", Table: "fences"},
}

var accessoryCategories = []Category{
	{Key: "vases", Label: "Вазы", Table: "accessories"},
	{Key: "lamps", Label: "Лампады", Table: "accessories"},
	{Key: "tables", Label: "Столы", Table: "accessories"},
	{Key: "benches", Label: "Скамейки", Table: "accessories"},
	{Key: "urns", Label: "Урны", Table: "accessories"},
	{Key: "portrait", Label: "Портреты", Table: "accessories"},
	{Key: "sculptures", Label: "Скульптуры", Table: "accessories"},
}

var landscapeCategories = []Category{
	{Key: "tiles", Label: "Плитка", Table: "landscape"},
	{Key: "borders", Label: "Бордюры", Table: "landscape"},
	{Key: "coverage", Label: "Покрытие", Table: "landscape"},
	{Key: "foundation", Label: "Фундамент", Table: "landscape"},
	{Key: "installation", Label: "Монтаж", Table: "landscape"},
	{Key: "gravel", Label: "Щебень", Table: "landscape"},
	{Key: "tables-benches", Label: "Столы и скамейки", Table: "landscape"},
}

var registry = map[EntityType][]Category{
	Monuments:   monumentCategories,
	Fences:      fenceCategories,
	Accessories: accessoryCategories,
	Landscape:   landscapeCategories,
	// Campaigns and blogs have no category dimension; their single table is
	// resolved through Table().
	Campaigns: nil,
	Blogs:     nil,
}

var singleTable = map[EntityType]string{
	Fences:      "fences",
	Accessories: "accessories",
	Landscape:   "landscape",
	Campaigns:   "campaigns",
	Blogs:       "blogs",
}

// ParseEntityType validates a raw entity type string.
func ParseEntityType(raw string) (EntityType, error) {
	et := EntityType(raw)
	if _, ok := registry[et]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntityType, raw)
	}
	return et, nil
}

// Resolve maps (entityType, categoryKey) to its category entry.
func Resolve(et EntityType, key string) (Category, error) {
	cats, ok := registry[et]
	if !ok {
		return Category{}, fmt.Errorf("%w: %s", ErrUnknownEntityType, et)
	}
	for _, c := range cats {
		if c.Key == key {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s/%s", ErrUnknownCategory, et, key)
}

// ResolveByLabel finds the category whose display label matches. Legacy
// clients sometimes send the Russian label where a key is expected.
func ResolveByLabel(et EntityType, label string) (Category, bool) {
	for _, c := range registry[et] {
		if c.Label == label {
			return c, true
		}
	}
	return Category{}, false
}

// Categories lists the categories of an entity type, empty for types
// without a category dimension.
func Categories(et EntityType) []Category {
	return registry[et]
}

// HasCategories reports whether the entity type carries a category dimension.
func HasCategories(et EntityType) bool {
	return len(registry[et]) > 0
}

// Table resolves the physical table of a single-table entity type.
func Table(et EntityType) (string, error) {
	t, ok := singleTable[et]
	if !ok {
		return "", fmt.Errorf("%w: %s has no single table", ErrUnknownEntityType, et)
	}
	return t, nil
}

// MonumentTables returns the distinct monument tables, fan-out order.
func MonumentTables() []Category {
	return monumentCategories
}

// entityResources maps the table-oriented vocabulary used by the per-entity
// SEO endpoints (PUT /api/admin/:entityType/:entityId/seo) to table names.
var entityResources = map[string]string{
	"single-monuments":    "single_monuments",
	"double-monuments":    "double_monuments",
	"cheap-monuments":     "cheap_monuments",
	"cross-monuments":     "cross_monuments",
	"heart-monuments":     "heart_monuments",
	"composite-monuments": "composite_monuments",
	"europe-monuments":    "europe_monuments",
	"artistic-monuments":  "artistic_monuments",
	"tree-monuments":      "tree_monuments",
	"complex-monuments":   "complex_monuments",
	"exclusive-monuments": "products",
	"fences":              "fences",
	"accessories":         "accessories",
	"landscape":           "landscape",
	"campaigns":           "campaigns",
	"blogs":               "blogs",
}

// ResolveResource maps a table-oriented resource name to its table.
func ResolveResource(resource string) (string, error) {
	t, ok := entityResources[resource]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntityType, resource)
	}
	return t, nil
}
