package middleware

import (
	"net/http"
)

// strict policy for a JSON-only API
const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeaders adds the response hardening headers of the API.
// isHTTPS: if true, adds Strict-Transport-Security header
func SecurityHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			headers.Set("X-Frame-Options", "DENY")
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			headers.Set("Content-Security-Policy", apiCSP)

			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
