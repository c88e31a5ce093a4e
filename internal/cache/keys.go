package cache

import "strconv"

// Key namespaces are disjoint: a list key can never equal an item key.
const (
	categoryListKey  = "categories:list"
	categoryIDPrefix = "category:"
)

// CategoryListKey is the key for the full category listing.
func CategoryListKey() string {
	return categoryListKey
}

// CategoryKey is the key for a single category by id.
func CategoryKey(id int64) string {
	return categoryIDPrefix + strconv.FormatInt(id, 10)
}
