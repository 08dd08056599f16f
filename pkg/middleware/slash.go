package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects paths ending in "/" to the same path without it.
// The root path is left alone, as are paths the skip function accepts.
func TrimSlash(skip func(path string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if len(path) > 1 && strings.HasSuffix(path, "/") && (skip == nil || !skip(path)) {
				target := strings.TrimRight(path, "/")
				if target == "" {
					target = "/"
				}
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
