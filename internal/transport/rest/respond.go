package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/transport/middleware"
	"github.com/heartmarshall/blog-backend/pkg/ctxutil"
	"github.com/heartmarshall/blog-backend/pkg/envelope"
)

const (
	msgInvalidBody      = "request body must be valid JSON"
	msgNotFound         = "resource not found"
	msgUnauthorized     = "unauthorized"
	msgForbidden        = "forbidden"
	msgConflict         = "resource already exists"
	msgMethodNotAllowed = "method not allowed"
)

// statusOf maps an error kind to its HTTP status.
func statusOf(k domain.Kind) int {
	switch k {
	case domain.KindValidationFailed:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError is the single place where service errors become HTTP
// responses. Internal failures are logged and hidden behind the request ID.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusOf(kind)

	var (
		verr *domain.ValidationError
		pub  *domain.PublicError
	)
	switch {
	case kind == domain.KindInternalFailure:
		requestID := ctxutil.RequestIDFromCtx(r.Context())
		log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID))
		writeFailure(w, status, middleware.InternalFailureMessage(requestID))
	case errors.As(err, &verr):
		writeFailure(w, status, verr.Messages()...)
	case errors.As(err, &pub):
		writeFailure(w, status, pub.Message)
	default:
		writeFailure(w, status, defaultMessage(kind))
	}
}

func defaultMessage(k domain.Kind) string {
	switch k {
	case domain.KindValidationFailed:
		return msgInvalidBody
	case domain.KindUnauthorized:
		return msgUnauthorized
	case domain.KindForbidden:
		return msgForbidden
	case domain.KindConflict:
		return msgConflict
	default:
		return msgNotFound
	}
}

func writeJSON[T any](w http.ResponseWriter, status int, payload T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope.Success(payload)) //nolint:errcheck
}

func writeFailure(w http.ResponseWriter, status int, msgs ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope.FailureList[struct{}](msgs)) //nolint:errcheck
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewPublicError(domain.ErrValidation, "request body is too large")
		}
		return domain.NewPublicError(domain.ErrValidation, msgInvalidBody)
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// pageParams reads the page and pageSize query parameters. Missing values
// fall back to the first page of the default size.
func pageParams(r *http.Request) (domain.Page, error) {
	q := r.URL.Query()
	var errs []domain.FieldError

	number, size := 0, 0
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil || n < 0:
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be a non-negative integer"})
		case n > domain.MaxPageNumber:
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be at most " + strconv.Itoa(domain.MaxPageNumber)})
		}
		number = n
	}
	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, domain.FieldError{Field: "pageSize", Message: "must be a positive integer"})
		}
		size = n
	}
	if len(errs) > 0 {
		return domain.Page{}, domain.NewValidationErrors(errs)
	}
	return domain.NewPage(number, size), nil
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusNotFound, msgNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
