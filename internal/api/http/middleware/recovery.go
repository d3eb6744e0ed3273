package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/filesmanager-server/internal/api/http/handler"
	"github.com/dtroode/filesmanager-server/internal/logger"
)

// Recovery turns handler panics into 500 responses.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				m.logger.Error("HTTP handler panicked",
					"path", r.URL.Path,
					"panic", fmt.Sprint(p),
					"stack", string(debug.Stack()))
				handler.WriteError(w, m.logger, fmt.Errorf("panic: %v", p))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
