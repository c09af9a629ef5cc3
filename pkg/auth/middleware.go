package auth

import (
	"context"
	"net/http"

	"github.com/traffpanel/traffpanel/pkg/utils"
)

type ContextKey string

const ClaimsKey ContextKey = "claims"

// ClaimsFromContext returns the session claims stored by the Authenticate
// middleware, or nil outside an authenticated request.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ClaimsKey).(*Claims)
	return claims
}

type Middleware struct {
	jwtService JWTServiceInterface
}

func NewMiddleware(jwtService JWTServiceInterface) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// Authenticate validates the session cookie and makes the claims available to
// downstream handlers through the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.jwtService.ValidateToken(cookie.Value)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates administrative routes. It must run after Authenticate.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != "admin" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSessionCookie writes the signed token as an HTTP-only cookie.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(TokenTTL.Seconds()),
	})
}
