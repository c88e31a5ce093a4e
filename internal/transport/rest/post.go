package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/service/post"
)

type postService interface {
	List(ctx context.Context, page domain.Page) (domain.PostPage, error)
	ListByCategory(ctx context.Context, slug string, page domain.Page) (domain.PostPage, error)
	Get(ctx context.Context, id int64) (*domain.PostDetail, error)
	Create(ctx context.Context, input post.Input) (*domain.PostSummary, error)
	Update(ctx context.Context, id int64, input post.Input) (*domain.PostSummary, error)
	Delete(ctx context.Context, id int64) error
}

// PostHandler serves /v1/posts.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type postSummaryResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	LastUpdateDate time.Time `json:"lastUpdateDate"`
	Category       string    `json:"category"`
	Author         string    `json:"author"`
}

type postPageResponse struct {
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
	Posts    []postSummaryResponse `json:"posts"`
}

type authorResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Slug  string  `json:"slug"`
	Image *string `json:"image"`
}

type postDetailResponse struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Summary        string           `json:"summary"`
	Body           string           `json:"body"`
	Slug           string           `json:"slug"`
	CreateDate     time.Time        `json:"createDate"`
	LastUpdateDate time.Time        `json:"lastUpdateDate"`
	Category       categoryResponse `json:"category"`
	Author         authorResponse   `json:"author"`
}

func toSummaryResponse(s domain.PostSummary) postSummaryResponse {
	return postSummaryResponse{
		ID:             s.ID,
		Title:          s.Title,
		Slug:           s.Slug,
		LastUpdateDate: s.LastUpdateDate,
		Category:       s.Category,
		Author:         s.Author,
	}
}

func toPageResponse(p domain.PostPage) postPageResponse {
	posts := make([]postSummaryResponse, 0, len(p.Posts))
	for _, s := range p.Posts {
		posts = append(posts, toSummaryResponse(s))
	}
	return postPageResponse{Total: p.Total, Page: p.Page, PageSize: p.PageSize, Posts: posts}
}

func toDetailResponse(d *domain.PostDetail) postDetailResponse {
	return postDetailResponse{
		ID:             d.ID,
		Title:          d.Title,
		Summary:        d.Summary,
		Body:           d.Body,
		Slug:           d.Slug,
		CreateDate:     d.CreateDate,
		LastUpdateDate: d.LastUpdateDate,
		Category:       toCategoryResponse(d.Category),
		Author: authorResponse{
			ID:    d.Author.ID,
			Name:  d.Author.Name,
			Email: d.Author.Email,
			Slug:  d.Author.Slug,
			Image: d.Author.Image,
		},
	}
}

// List handles GET /v1/posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.svc.List(r.Context(), page)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(p))
}

// ListByCategory handles GET /v1/posts/category/{slug}.
func (h *PostHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.svc.ListByCategory(r.Context(), chi.URLParam(r, "slug"), page)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(p))
}

// Get handles GET /v1/posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetailResponse(d))
}

// Create handles POST /v1/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req post.Input
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", "/v1/posts/"+strconv.FormatInt(s.ID, 10))
	writeJSON(w, http.StatusCreated, toSummaryResponse(*s))
}

// Update handles PUT /v1/posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req post.Input
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(*s))
}

// Delete handles DELETE /v1/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
