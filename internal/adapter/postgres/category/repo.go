// Package category implements the category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/blog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

var columns = []string{"id", "name", "slug"}

const returning = "RETURNING id, name, slug"

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	sql, args, err := postgres.Builder.Select(columns...).From("categories").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select categories: %w", err)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "categories", "list")
	}

	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

// GetByID returns a single category.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByName returns the category with exactly the given name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.getBy(ctx, squirrel.Eq{"name": name}, name)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, key any) (*domain.Category, error) {
	sql, args, err := postgres.Builder.Select(columns...).From("categories").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select category: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", key)
	}
	c := toDomain(row)
	return &c, nil
}

// Create inserts a category. A duplicate slug yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	b := postgres.Builder.
		Insert("categories").
		Columns("name", "slug").
		Values(c.Name, c.Slug).
		Suffix(returning)
	return r.write(ctx, b, c.Slug)
}

// Update overwrites the name and slug of an existing category.
func (r *Repo) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	b := postgres.Builder.
		Update("categories").
		Set("name", c.Name).
		Set("slug", c.Slug).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix(returning)
	return r.write(ctx, b, c.ID)
}

// Delete removes a category and returns the deleted row. A category that
// still has posts yields domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.Category, error) {
	sql, args, err := postgres.Builder.
		Delete("categories").
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete category: %w", err)
	}

	var row categoryRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...)
	switch {
	case postgres.IsForeignKeyViolation(err):
		return nil, fmt.Errorf("category %d: %w", id, domain.NewPublicError(domain.ErrConflict, "category still has posts"))
	case err != nil:
		return nil, postgres.MapError(err, "category", id)
	}
	c := toDomain(row)
	return &c, nil
}

func (r *Repo) write(ctx context.Context, b squirrel.Sqlizer, key any) (*domain.Category, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category statement: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", key)
	}
	c := toDomain(row)
	return &c, nil
}

func toDomain(row categoryRow) domain.Category {
	return domain.Category{ID: row.ID, Name: row.Name, Slug: row.Slug}
}
