package model

// Category is the closed set of task categories.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryUni      Category = "Uni"
	CategoryWork     Category = "Work"
	CategoryBacklog  Category = "Backlog"
)

// Display colors per category. A task's Color field is always derived
// from this map, never set independently.
var categoryColors = map[Category]string{
	CategoryPersonal: "#3B82F6", // blue
	CategoryUni:      "#10B981", // green
	CategoryWork:     "#F59E0B", // amber
	CategoryBacklog:  "#6B7280", // gray
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryUni, CategoryWork, CategoryBacklog}
}

// Valid returns true if c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// ColorFor returns the display color for a category. Unknown categories
// fall back to the Personal color.
func ColorFor(c Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryPersonal]
}

// ParseCategory maps a string to a Category. Unknown values return
// CategoryPersonal and false.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	return CategoryPersonal, false
}
