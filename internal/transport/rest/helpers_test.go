package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/blog-backend/pkg/envelope"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decodeData decodes a success envelope and fails the test on an error envelope.
func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope.Envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	data, ok := env.Data()
	if !ok {
		t.Fatalf("expected success envelope, got errors %v", env.Errors())
	}
	return data
}

// decodeErrors decodes a failure envelope and fails the test on a success.
func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var env envelope.Envelope[json.RawMessage]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	if env.OK() {
		t.Fatalf("expected failure envelope, got %q", rec.Body.String())
	}
	return env.Errors()
}
