package middleware

import "net/http"

// NoCacheMiddleware запрещает кэширование ответов.
// Ответы sync-эндпоинтов привязаны к моменту обращения и часам реплики:
// закэшированная дельта сломала бы сходимость.
func NoCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
