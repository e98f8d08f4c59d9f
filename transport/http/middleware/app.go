package middleware

import (
	"balai/config"
	"balai/infras/otel"
	"net/http"

	goRedis "github.com/redis/go-redis/v9"
)

// App hosts the cross-cutting HTTP middleware for the service.
type App struct {
	config *config.Config
	otel   otel.Otel
	redis  *goRedis.Client
}

// ProvideApp is the provider for App middleware.
func ProvideApp(config *config.Config, otel otel.Otel, redis *goRedis.Client) *App {
	return &App{
		config: config,
		otel:   otel,
		redis:  redis,
	}
}

// Tracing opens a root span for every request and propagates the trace
// context downstream through the request context.
func (a *App) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), "http", r.Method+" "+r.URL.Path)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"http.method":     r.Method,
			"http.target":     r.URL.Path,
			"http.user_agent": r.UserAgent(),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
