package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/blog-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the author role and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	u := domain.User{
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
	}
	u.Slug = domain.UserSlug(u.Email)

	err := pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, slug) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Name, u.Email, u.PasswordHash, u.Slug,
	).Scan(&u.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role_id) SELECT $1, id FROM roles WHERE slug = $2`,
		u.ID, domain.RoleAuthor,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser assign role: %v", err)
	}
	u.Roles = []domain.Role{{Name: "Author", Slug: domain.RoleAuthor}}

	return u
}

// SeedCategory inserts a category with a unique name and slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Category{Name: "Category " + suffix, Slug: "category-" + suffix}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Slug,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}
