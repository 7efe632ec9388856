package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a handler panic into the given error page
// instead of a dropped connection.
func RecoveryMiddleware(errorPage http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Printf("panic recovered: request_id=%s error=%v stack=%s", RequestIDFrom(r), err, string(debug.Stack()))

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}
					if !wroteHeader {
						errorPage(w, r)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
