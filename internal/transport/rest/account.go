package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/blog-backend/internal/service/account"
)

type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*account.RegisterResult, error)
	Login(ctx context.Context, input account.LoginInput) (string, error)
	UploadImage(ctx context.Context, input account.UploadImageInput) (string, error)
}

// AccountHandler serves /v1/accounts.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerResponse struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type imageResponse struct {
	Image string `json:"image"`
}

// Register handles POST /v1/accounts.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req account.RegisterInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, registerResponse{User: result.User, Password: result.Password})
}

// Login handles POST /v1/accounts/login. The payload is the bare token.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req account.LoginInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

// UploadImage handles POST /v1/accounts/upload-image.
func (h *AccountHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req account.UploadImageInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	url, err := h.svc.UploadImage(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{Image: url})
}
