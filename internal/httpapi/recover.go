package httpapi

import (
	"log/slog"
	"net/http"
	"runtime"
)

const defaultStackSize = 4096

// Recover turns a handler panic into a 500 JSON error and logs the stack.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
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

				stack := make([]byte, defaultStackSize)
				stack = stack[:runtime.Stack(stack, false)]
				log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(stack)),
				)

				writeError(w, r, errInternal(nil))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
