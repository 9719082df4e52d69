package session

import (
	"context"
	"net/http"
)

type identityCtxKey struct{}

// Middleware resolves the bearer token and, when valid, attaches the identity
// to the request context. Requests without a session pass through untouched;
// route handlers decide whether anonymity is acceptable.
func Middleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if id, err := store.Resolve(r.Context(), token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), identityCtxKey{}, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FromContext returns the identity attached by Middleware, if any.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(*Identity)
	return id, ok
}
