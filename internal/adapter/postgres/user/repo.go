// Package user implements the account repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/blog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

// assignRoleSQL links a user to a role looked up by slug.
const assignRoleSQL = `INSERT INTO user_roles (user_id, role_id)
SELECT $1, id FROM roles WHERE slug = $2
ON CONFLICT (user_id, role_id) DO NOTHING`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Slug         string  `db:"slug"`
	Bio          string  `db:"bio"`
	Image        *string `db:"image"`
}

type roleRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

var userColumns = []string{"id", "name", "email", "password_hash", "slug", "bio", "image"}

// Create inserts a new user and returns it with its generated id.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Insert("users").
		Columns("name", "email", "password_hash", "slug", "bio", "image").
		Values(u.Name, u.Email, u.PasswordHash, u.Slug, u.Bio, u.Image).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	created := *u
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&created.ID); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return &created, nil
}

// GetByEmail returns the user with the given email together with its roles.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	roles, err := r.rolesOf(ctx, q, row.ID)
	if err != nil {
		return nil, err
	}

	u := toDomainUser(row)
	u.Roles = roles
	return &u, nil
}

func (r *Repo) rolesOf(ctx context.Context, q postgres.Querier, userID int64) ([]domain.Role, error) {
	sql, args, err := postgres.Builder.
		Select("r.id", "r.name", "r.slug").
		From("roles r").
		Join("user_roles ur ON ur.role_id = r.id").
		Where(squirrel.Eq{"ur.user_id": userID}).
		OrderBy("r.slug").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select roles: %w", err)
	}

	var rows []roleRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "roles of user", userID)
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, rr := range rows {
		roles = append(roles, domain.Role{ID: rr.ID, Name: rr.Name, Slug: rr.Slug})
	}
	return roles, nil
}

// AssignRole links the user to the role with the given slug. Assigning a
// role twice is a no-op; an unknown role yields domain.ErrNotFound.
func (r *Repo) AssignRole(ctx context.Context, userID int64, roleSlug string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM roles WHERE slug = $1)`, roleSlug).Scan(&exists); err != nil {
		return postgres.MapError(err, "role", roleSlug)
	}
	if !exists {
		return fmt.Errorf("role %s: %w", roleSlug, domain.ErrNotFound)
	}

	if _, err := q.Exec(ctx, assignRoleSQL, userID, roleSlug); err != nil {
		return postgres.MapError(err, "user role", roleSlug)
	}
	return nil
}

// UpdateImage sets the profile image URL of the user with the given email.
func (r *Repo) UpdateImage(ctx context.Context, email, imageURL string) error {
	sql, args, err := postgres.Builder.
		Update("users").
		Set("image", imageURL).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user image: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Slug:         row.Slug,
		PasswordHash: row.PasswordHash,
		Bio:          row.Bio,
		Image:        row.Image,
	}
}
