package domain

// Category groups posts. Slug is unique and stored lowercased.
type Category struct {
	ID   int64
	Name string
	Slug string
}
