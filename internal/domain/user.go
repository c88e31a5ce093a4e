package domain

import "slices"

// RoleAuthor is the role required to publish and edit posts.
const RoleAuthor = "author"

// Role is a named permission attached to a user.
type Role struct {
	ID   int64
	Name string
	Slug string
}

// User is a registered account. PasswordHash is never the plaintext.
type User struct {
	ID           int64
	Name         string
	Email        string
	Slug         string
	PasswordHash string
	Bio          string
	Image        *string
	Roles        []Role
}

// RoleSlugs returns the slugs of all roles assigned to the user.
func (u *User) RoleSlugs() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Slug)
	}
	return out
}

// HasRole reports whether the user holds the role with the given slug.
func (u *User) HasRole(slug string) bool {
	return slices.Contains(u.RoleSlugs(), slug)
}

// Byline renders the author the way post listings show it: "Name (email)".
func (u *User) Byline() string {
	return Byline(u.Name, u.Email)
}

// Byline formats a name and email as "Name (email)".
func Byline(name, email string) string {
	return name + " (" + email + ")"
}
