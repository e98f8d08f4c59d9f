package middleware

import (
	"balai/infras/jwt"
	authService "balai/internal/domains/auth/service"
	"balai/permissions"
	"balai/shared/cache"
	"balai/shared/constant"
	"balai/shared/failure"
	"balai/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Auth guards routes behind a valid access token and the role-based
// permission table.
type Auth struct {
	jwt   jwt.JWT
	cache cache.RedisCache
}

// ProvideAuth is the provider for Auth middleware.
func ProvideAuth(jwtService jwt.JWT, redisCache cache.RedisCache) *Auth {
	return &Auth{jwt: jwtService, cache: redisCache}
}

// Authenticate validates the bearer token and stores the caller's
// identity on the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			response.WithError(w, failure.Unauthorized("missing or malformed bearer token"))
			return
		}

		claims, err := a.jwt.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			response.WithError(w, failure.Unauthorized("invalid or expired access token"))
			return
		}

		if authService.IsTokenBlacklisted(r.Context(), a.cache, claims.TokenID) {
			response.WithError(w, failure.Unauthorized("token has been revoked"))
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the caller's role against the permission table for
// the matched chi route pattern. It must run after Authenticate.
func (a *Auth) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(constant.ContextKeyUserRole).(string)
		if !ok || role == "" {
			response.WithError(w, failure.Unauthorized("no role associated with this token"))
			return
		}

		routeCtx := chi.RouteContext(r.Context())
		pattern := routeCtx.RoutePattern()

		if !permissions.IsAllowed(role, r.Method, pattern) {
			response.WithError(w, failure.Forbidden("you are not allowed to access this resource"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey guards machine-to-machine routes behind the configured static
// API key header.
func (a *Auth) APIKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get(constant.RequestHeaderAPIKey) != apiKey {
				response.WithError(w, failure.Unauthorized("invalid API key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
