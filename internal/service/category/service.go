// Package category implements category reads through the content cache and
// category writes.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/blog-backend/internal/cache"
	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/validate"
)

// MsgSlugTaken is the client-facing message for a duplicate slug.
const MsgSlugTaken = "a category with this slug already exists"

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (*domain.Category, error)
}

// Service implements category operations. Reads are served from the cache
// and may be up to ttl stale after a write.
type Service struct {
	log   *slog.Logger
	repo  categoryRepo
	cache *cache.Cache
	ttl   time.Duration
}

// NewService creates a new category service instance.
func NewService(logger *slog.Logger, repo categoryRepo, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{
		log:   logger.With("service", "category"),
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

// Input holds the editable fields of a category.
type Input struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
	Slug string `json:"slug" validate:"required,max=100"`
}

func (i *Input) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Slug = domain.CategorySlug(i.Slug)
}

// Validate validates the category input.
func (i Input) Validate() error { return validate.Struct(i) }

// List returns every category.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	list, err := cache.GetOrCompute(ctx, s.cache, cache.CategoryListKey(), s.ttl, s.repo.List)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return slices.Clone(list), nil
}

// Get returns a single category.
func (s *Service) Get(ctx context.Context, id int64) (domain.Category, error) {
	c, err := cache.GetOrCompute(ctx, s.cache, cache.CategoryKey(id), s.ttl,
		func(ctx context.Context) (domain.Category, error) {
			c, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return domain.Category{}, err
			}
			return *c, nil
		})
	if err != nil {
		return domain.Category{}, fmt.Errorf("category.Get: %w", err)
	}
	return c, nil
}

// Create adds a category.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Category, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, domain.Category{Name: input.Name, Slug: input.Slug})
	if err != nil {
		return nil, wrapWrite("category.Create", err)
	}

	s.log.InfoContext(ctx, "category created", slog.Int64("category_id", c.ID), slog.String("slug", c.Slug))
	return c, nil
}

// Update replaces the name and slug of a category.
func (s *Service) Update(ctx context.Context, id int64, input Input) (*domain.Category, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.Update(ctx, domain.Category{ID: id, Name: input.Name, Slug: input.Slug})
	if err != nil {
		return nil, wrapWrite("category.Update", err)
	}

	s.log.InfoContext(ctx, "category updated", slog.Int64("category_id", c.ID))
	return c, nil
}

// Delete removes a category and returns what was deleted.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.Int64("category_id", c.ID))
	return c, nil
}

func wrapWrite(op string, err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewPublicError(domain.ErrAlreadyExists, MsgSlugTaken)
	}
	return fmt.Errorf("%s: %w", op, err)
}
