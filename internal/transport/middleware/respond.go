package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/blog-backend/pkg/envelope"
)

// writeError writes a failure envelope. Middleware cannot use the rest
// package's helpers without an import cycle.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope.Failure[struct{}](msg))
}
