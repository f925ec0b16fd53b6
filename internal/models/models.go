// filepath: internal/models/models.go
package models

// Category is a normalized category row. Names are unique; rows are created
// lazily on first use and never updated or deleted.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item is the denormalized read model for a catalog item. Read paths always
// join items with categories, so callers see the category name instead of
// the internal category_id.
type Item struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	ImageName string `json:"image_name"`
}
