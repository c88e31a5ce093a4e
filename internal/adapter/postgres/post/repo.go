// Package post implements the post repository using PostgreSQL.
package post

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/blog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type postRow struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Summary        string    `db:"summary"`
	Body           string    `db:"body"`
	Slug           string    `db:"slug"`
	CreateDate     time.Time `db:"create_date"`
	LastUpdateDate time.Time `db:"last_update_date"`
	CategoryID     int64     `db:"category_id"`
	AuthorID       int64     `db:"author_id"`
}

type summaryRow struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Slug           string    `db:"slug"`
	LastUpdateDate time.Time `db:"last_update_date"`
	Category       string    `db:"category"`
	AuthorName     string    `db:"author_name"`
	AuthorEmail    string    `db:"author_email"`
}

type detailRow struct {
	postRow
	CategoryName string  `db:"category_name"`
	CategorySlug string  `db:"category_slug"`
	AuthorName   string  `db:"author_name"`
	AuthorEmail  string  `db:"author_email"`
	AuthorSlug   string  `db:"author_slug"`
	AuthorImage  *string `db:"author_image"`
}

var postColumns = []string{
	"id", "title", "summary", "body", "slug",
	"create_date", "last_update_date", "category_id", "author_id",
}

const returning = "RETURNING id, title, summary, body, slug, create_date, last_update_date, category_id, author_id"

// List returns one page of post summaries, newest update first.
func (r *Repo) List(ctx context.Context, page domain.Page) (domain.PostPage, error) {
	return r.listWhere(ctx, nil, page)
}

// ListByCategorySlug returns one page of the posts in a category.
func (r *Repo) ListByCategorySlug(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error) {
	return r.listWhere(ctx, squirrel.Eq{"c.slug": slug}, page)
}

func (r *Repo) listWhere(ctx context.Context, where squirrel.Sqlizer, page domain.Page) (domain.PostPage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	result := domain.PostPage{Page: page.Number, PageSize: page.Size, Posts: []domain.PostSummary{}}

	count := postgres.Builder.
		Select("count(*)").
		From("posts p").
		Join("categories c ON c.id = p.category_id")
	if where != nil {
		count = count.Where(where)
	}
	sql, args, err := count.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count posts: %w", err)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&result.Total); err != nil {
		return result, postgres.MapError(err, "posts", "count")
	}

	sel := postgres.Builder.
		Select(
			"p.id", "p.title", "p.slug", "p.last_update_date",
			"c.name AS category", "u.name AS author_name", "u.email AS author_email",
		).
		From("posts p").
		Join("categories c ON c.id = p.category_id").
		Join("users u ON u.id = p.author_id").
		OrderBy("p.last_update_date DESC", "p.id DESC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset()))
	if where != nil {
		sel = sel.Where(where)
	}
	sql, args, err = sel.ToSql()
	if err != nil {
		return result, fmt.Errorf("build select posts: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return result, postgres.MapError(err, "posts", "list")
	}
	for _, row := range rows {
		result.Posts = append(result.Posts, domain.PostSummary{
			ID:             row.ID,
			Title:          row.Title,
			Slug:           row.Slug,
			LastUpdateDate: row.LastUpdateDate,
			Category:       row.Category,
			Author:         domain.Byline(row.AuthorName, row.AuthorEmail),
		})
	}
	return result, nil
}

// GetDetail returns a post with its category and author.
func (r *Repo) GetDetail(ctx context.Context, id int64) (*domain.PostDetail, error) {
	sql, args, err := postgres.Builder.
		Select(
			"p.id", "p.title", "p.summary", "p.body", "p.slug",
			"p.create_date", "p.last_update_date", "p.category_id", "p.author_id",
			"c.name AS category_name", "c.slug AS category_slug",
			"u.name AS author_name", "u.email AS author_email",
			"u.slug AS author_slug", "u.image AS author_image",
		).
		From("posts p").
		Join("categories c ON c.id = p.category_id").
		Join("users u ON u.id = p.author_id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select post detail: %w", err)
	}

	var row detailRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return &domain.PostDetail{
		Post:     toDomain(row.postRow),
		Category: domain.Category{ID: row.CategoryID, Name: row.CategoryName, Slug: row.CategorySlug},
		Author: domain.Author{
			ID:    row.AuthorID,
			Name:  row.AuthorName,
			Email: row.AuthorEmail,
			Slug:  row.AuthorSlug,
			Image: row.AuthorImage,
		},
	}, nil
}

// GetByID returns the bare post row.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	sql, args, err := postgres.Builder.Select(postColumns...).From("posts").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select post: %w", err)
	}
	return r.getOne(ctx, sql, args, id)
}

// Create inserts a post. Unknown category or author ids yield
// domain.ErrNotFound; a duplicate slug yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Post) (*domain.Post, error) {
	sql, args, err := postgres.Builder.
		Insert("posts").
		Columns("title", "summary", "body", "slug", "create_date", "last_update_date", "category_id", "author_id").
		Values(p.Title, p.Summary, p.Body, p.Slug, p.CreateDate, p.LastUpdateDate, p.CategoryID, p.AuthorID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert post: %w", err)
	}
	return r.getOne(ctx, sql, args, p.Slug)
}

// Update overwrites the editable fields of a post. CreateDate and AuthorID
// are left untouched.
func (r *Repo) Update(ctx context.Context, p domain.Post) (*domain.Post, error) {
	sql, args, err := postgres.Builder.
		Update("posts").
		Set("title", p.Title).
		Set("summary", p.Summary).
		Set("body", p.Body).
		Set("slug", p.Slug).
		Set("last_update_date", p.LastUpdateDate).
		Set("category_id", p.CategoryID).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update post: %w", err)
	}
	return r.getOne(ctx, sql, args, p.ID)
}

// Delete removes a post.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := postgres.Builder.Delete("posts").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete post: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, sql string, args []any, key any) (*domain.Post, error) {
	var row postRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", key)
	}
	p := toDomain(row)
	return &p, nil
}

func toDomain(row postRow) domain.Post {
	return domain.Post{
		ID:             row.ID,
		Title:          row.Title,
		Summary:        row.Summary,
		Body:           row.Body,
		Slug:           row.Slug,
		CreateDate:     row.CreateDate,
		LastUpdateDate: row.LastUpdateDate,
		CategoryID:     row.CategoryID,
		AuthorID:       row.AuthorID,
	}
}
