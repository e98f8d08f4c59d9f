package middleware

import (
	"balai/shared/constant"
	"balai/transport/http/response"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// RateLimit caps the number of requests a single client may make within
// the configured window. Counters live in Redis so every instance of
// the service shares the same budget.
func (a *App) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)
			return
		}

		limiterConfig := a.config.App.RateLimiter
		window := time.Duration(limiterConfig.WindowSeconds) * time.Second
		key := fmt.Sprintf("rate:%s:%s", getClientIP(r), getClientUA(r))

		count, err := a.redis.Incr(r.Context(), key).Result()
		if err != nil {
			log.Error().Err(err).Msg("Failed to increment rate limit counter, letting request through.")
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			if err := a.redis.Expire(r.Context(), key, window).Err(); err != nil {
				log.Error().Err(err).Msg("Failed to set rate limit window expiry.")
			}
		}

		remaining := int64(limiterConfig.MaxRequests) - count
		if remaining < 0 {
			remaining = 0
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiterConfig.MaxRequests))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(remaining, 10))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiterConfig.WindowSeconds))

		if count > int64(limiterConfig.MaxRequests) {
			response.WithRequestLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func getClientUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		return "unknown"
	}

	// Collapse the UA into something key-safe.
	return strings.ReplaceAll(ua, " ", "_")
}
