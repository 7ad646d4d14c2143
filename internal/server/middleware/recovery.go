package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/tasksync/pkg/api"
)

// RecoveryMiddleware перехватывает панику обработчика, логирует стек и
// отвечает 500 в формате api.ErrorResponse, как остальные ошибки API.
// http.ErrAbortHandler пробрасывается дальше: это штатный способ
// net/http оборвать соединение, а не сбой обработчика.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"stack", string(debug.Stack()),
				)

				// Детали паники клиенту не раскрываются
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{
					Error:   "internal_error",
					Message: "internal server error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
