// Package cors decorates responses under the API prefix with CORS
// headers and a JSON content type.
package cors

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/felixge/httpsnoop"
)

const (
	allowOrigin  = "*"
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Authorization"
	contentType  = "application/json"
)

// Middleware applies the headers to every response whose path starts with
// prefix. Headers are set right before the status line goes out, so they
// win over whatever the handler put there.
func Middleware(prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			if r.Method == http.MethodOptions {
				decorate(w.Header())
				w.WriteHeader(http.StatusNoContent)
				return
			}

			var once sync.Once
			apply := func() { once.Do(func() { decorate(w.Header()) }) }

			wrapped := httpsnoop.Wrap(w, httpsnoop.Hooks{
				WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						apply()
						next(code)
					}
				},
				Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(b []byte) (int, error) {
						apply()
						return next(b)
					}
				},
				ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
					return func(src io.Reader) (int64, error) {
						apply()
						return next(src)
					}
				},
			})

			next.ServeHTTP(wrapped, r)
			// nothing written yet: net/http sends the header after we return
			apply()
		})
	}
}

func decorate(h http.Header) {
	h.Set("Access-Control-Allow-Origin", allowOrigin)
	h.Set("Access-Control-Allow-Methods", allowMethods)
	h.Set("Access-Control-Allow-Headers", allowHeaders)
	h.Set("Content-Type", contentType)
}
