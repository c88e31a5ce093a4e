package domain

import "time"

// Post is a blog article written by a single author in a single category.
type Post struct {
	ID             int64
	Title          string
	Summary        string
	Body           string
	Slug           string
	CreateDate     time.Time
	LastUpdateDate time.Time
	CategoryID     int64
	AuthorID       int64
}

// PostSummary is the listing projection of a post.
type PostSummary struct {
	ID             int64
	Title          string
	Slug           string
	LastUpdateDate time.Time
	Category       string
	Author         string
}

// PostDetail is a post together with its author and category.
type PostDetail struct {
	Post
	Category Category
	Author   Author
}

// Author is the public view of a post's author.
type Author struct {
	ID    int64
	Name  string
	Email string
	Slug  string
	Image *string
}
