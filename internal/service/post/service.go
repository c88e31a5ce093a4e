// Package post implements blog post listing, publishing and editing.
package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/validate"
	"github.com/heartmarshall/blog-backend/pkg/ctxutil"
)

// Client-facing messages.
const (
	MsgSlugTaken        = "a post with this title already exists"
	MsgCategoryNotFound = "category not found"
	MsgAuthorNotFound   = "author not found"
	MsgNotOwner         = "only the author of a post can delete it"
)

type postRepo interface {
	List(ctx context.Context, page domain.Page) (domain.PostPage, error)
	ListByCategorySlug(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error)
	GetDetail(ctx context.Context, id int64) (*domain.PostDetail, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, p domain.Post) (*domain.Post, error)
	Update(ctx context.Context, p domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}

type categoryLookup interface {
	GetByName(ctx context.Context, name string) (*domain.Category, error)
}

type userLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service implements post operations.
type Service struct {
	log        *slog.Logger
	posts      postRepo
	categories categoryLookup
	users      userLookup
	clock      clockwork.Clock
}

// NewService creates a new post service instance.
func NewService(logger *slog.Logger, posts postRepo, categories categoryLookup, users userLookup, clock clockwork.Clock) *Service {
	return &Service{
		log:        logger.With("service", "post"),
		posts:      posts,
		categories: categories,
		users:      users,
		clock:      clock,
	}
}

// Input holds the editable fields of a post. Category is the category name.
type Input struct {
	Category string `json:"category" validate:"required,min=3,max=80"`
	Title    string `json:"title" validate:"required,min=3,max=160"`
	Summary  string `json:"summary" validate:"required,min=3,max=255"`
	Body     string `json:"body" validate:"required,min=3,max=4000"`
}

func (i *Input) normalize() {
	i.Category = strings.TrimSpace(i.Category)
	i.Title = strings.TrimSpace(i.Title)
	i.Summary = strings.TrimSpace(i.Summary)
}

// Validate validates the post input.
func (i Input) Validate() error { return validate.Struct(i) }

// List returns one page of posts, most recently updated first.
func (s *Service) List(ctx context.Context, page domain.Page) (domain.PostPage, error) {
	p, err := s.posts.List(ctx, page)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("post.List: %w", err)
	}
	return p, nil
}

// ListByCategory returns one page of posts in the category with the given slug.
func (s *Service) ListByCategory(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error) {
	p, err := s.posts.ListByCategorySlug(ctx, domain.CategorySlug(slug), page)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("post.ListByCategory: %w", err)
	}
	return p, nil
}

// Get returns a post with its author and category.
func (s *Service) Get(ctx context.Context, id int64) (*domain.PostDetail, error) {
	d, err := s.posts.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}
	return d, nil
}

// Create publishes a post authored by the caller.
func (s *Service) Create(ctx context.Context, input Input) (*domain.PostSummary, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, category, err := s.resolve(ctx, input.Category)
	if err != nil {
		return nil, fmt.Errorf("post.Create: %w", err)
	}

	now := s.clock.Now().UTC()
	p, err := s.posts.Create(ctx, domain.Post{
		Title:          input.Title,
		Summary:        input.Summary,
		Body:           input.Body,
		Slug:           domain.PostSlug(input.Title),
		CreateDate:     now,
		LastUpdateDate: now,
		CategoryID:     category.ID,
		AuthorID:       author.ID,
	})
	if err != nil {
		return nil, wrapWrite("post.Create", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.Int64("post_id", p.ID),
		slog.Int64("author_id", author.ID),
		slog.String("slug", p.Slug))

	return summary(p, category, author), nil
}

// Update replaces the content of a post. Any author may edit any post.
func (s *Service) Update(ctx context.Context, id int64, input Input) (*domain.PostSummary, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, category, err := s.resolve(ctx, input.Category)
	if err != nil {
		return nil, fmt.Errorf("post.Update: %w", err)
	}

	p, err := s.posts.Update(ctx, domain.Post{
		ID:             id,
		Title:          input.Title,
		Summary:        input.Summary,
		Body:           input.Body,
		Slug:           domain.PostSlug(input.Title),
		LastUpdateDate: s.clock.Now().UTC(),
		CategoryID:     category.ID,
	})
	if err != nil {
		return nil, wrapWrite("post.Update", err)
	}

	s.log.InfoContext(ctx, "post updated",
		slog.Int64("post_id", p.ID),
		slog.Int64("editor_id", author.ID))

	d, err := s.posts.GetDetail(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("post.Update reload: %w", err)
	}
	return &domain.PostSummary{
		ID:             d.ID,
		Title:          d.Title,
		Slug:           d.Slug,
		LastUpdateDate: d.LastUpdateDate,
		Category:       d.Category.Name,
		Author:         domain.Byline(d.Author.Name, d.Author.Email),
	}, nil
}

// Delete removes a post. Only its author may delete it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return fmt.Errorf("post.Delete: %w", err)
	}

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("post.Delete: %w", err)
	}
	if p.AuthorID != caller.ID {
		return domain.NewPublicError(domain.ErrForbidden, MsgNotOwner)
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("post.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "post deleted", slog.Int64("post_id", id), slog.Int64("author_id", caller.ID))
	return nil
}

// resolve looks up the calling author and the named category.
func (s *Service) resolve(ctx context.Context, categoryName string) (*domain.User, *domain.Category, error) {
	author, err := s.caller(ctx)
	if err != nil {
		return nil, nil, err
	}

	category, err := s.categories.GetByName(ctx, categoryName)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, domain.NewPublicError(domain.ErrNotFound, MsgCategoryNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	return author, category, nil
}

func (s *Service) caller(ctx context.Context) (*domain.User, error) {
	email, ok := ctxutil.SubjectFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewPublicError(domain.ErrNotFound, MsgAuthorNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func summary(p *domain.Post, c *domain.Category, author *domain.User) *domain.PostSummary {
	return &domain.PostSummary{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		LastUpdateDate: p.LastUpdateDate,
		Category:       c.Name,
		Author:         author.Byline(),
	}
}

func wrapWrite(op string, err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewPublicError(domain.ErrAlreadyExists, MsgSlugTaken)
	}
	return fmt.Errorf("%s: %w", op, err)
}
