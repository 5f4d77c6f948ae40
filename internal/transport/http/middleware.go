package http

import (
	"crypto/subtle"
	"net/http"
)

// CredentialCheck decides whether an admin credential pair is valid. The
// check is pluggable on purpose: the product ships a static pair, and
// hardening it is explicitly out of scope here.
type CredentialCheck func(username, password string) bool

// StaticCredentials builds a constant-time check against one configured pair.
func StaticCredentials(username, password string) CredentialCheck {
	return func(user, pass string) bool {
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		return userOK && passOK
	}
}

// adminAuth guards the admin endpoints with HTTP basic auth backed by the
// injected credential check.
func adminAuth(check CredentialCheck, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !check(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORSConfig carries the allowed origins/methods/headers for the API.
type CORSConfig struct {
	Origins string
	Methods string
	Headers string
}

func (c CORSConfig) withDefaults() CORSConfig {
	if c.Origins == "" {
		c.Origins = "*"
	}
	if c.Methods == "" {
		c.Methods = "GET, POST, PATCH, DELETE, OPTIONS"
	}
	if c.Headers == "" {
		c.Headers = "Content-Type, Authorization"
	}
	return c
}

func corsMiddleware(cfg CORSConfig) func(http.Handler) http.Handler {
	cfg = cfg.withDefaults()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.Origins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.Methods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.Headers)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
