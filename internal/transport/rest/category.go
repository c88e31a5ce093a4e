package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/service/category"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (domain.Category, error)
	Create(ctx context.Context, input category.Input) (*domain.Category, error)
	Update(ctx context.Context, id int64, input category.Input) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (*domain.Category, error)
}

// CategoryHandler serves /v1/categories.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// List handles GET /v1/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /v1/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create handles POST /v1/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req category.Input
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", "/v1/categories/"+strconv.FormatInt(c.ID, 10))
	writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// Update handles PUT /v1/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req category.Input
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// Delete handles DELETE /v1/categories/{id} and returns the deleted category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}
