package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
	}{
		{
			name:     "implicit ok",
			handler:  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) },
			wantCode: http.StatusOK,
		},
		{
			name:     "explicit status",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantCode: http.StatusNoContent,
		},
		{
			name:     "server error",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			NewLogging(testutil.MakeNoopLogger()).Handle(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestLogging_Handle_WritesRecord(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithFormat(&buf, 0, "json")

	h := NewLogging(lg).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/files", nil))

	assert.Contains(t, buf.String(), `"msg":"HTTP request completed"`)
	assert.Contains(t, buf.String(), `"path":"/files"`)
	assert.Contains(t, buf.String(), `"status":201`)
}
