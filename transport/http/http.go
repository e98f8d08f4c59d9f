package http

import (
	"balai/config"
	"balai/transport/http/response"
	"balai/transport/http/router"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// ServerState is an indicator if this server's state.
type ServerState int

const (
	// ServerStateReady indicates that the server is ready to serve.
	ServerStateReady ServerState = iota + 1
	// ServerStateInGracePeriod indicates that the server is in its grace
	// period and will shut down after it is done cleaning up.
	ServerStateInGracePeriod
	// ServerStateInCleanupPeriod indicates that the server no longer
	// responds to any requests, is cleaning up its internal state, and
	// will soon shut down.
	ServerStateInCleanupPeriod
)

// HTTP is the HTTP server.
type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState
	mux    *chi.Mux
}

// ProvideHTTP is the provider for HTTP.
func ProvideHTTP(config *config.Config, router router.Router) *HTTP {
	return &HTTP{
		Config: config,
		Router: router,
	}
}

// SetupAndServe sets up the server and gets it up and running.
func (h *HTTP) SetupAndServe() {
	h.mux = chi.NewRouter()
	h.setupMiddleware()
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	err := http.ListenAndServe(":"+h.Config.Server.Port, h.mux)
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to serve HTTP.")
	}
}

func (h *HTTP) setupMiddleware() {
	h.mux.Use(h.serverStateMiddleware)
	if h.Config.App.CORS.Enable {
		log.Info().Msg("CORS Headers and Handlers are enabled.")
		h.mux.Use(h.corsHandler())
	}
}

func (h *HTTP) setupRoutes() {
	h.mux.Get("/health", h.HealthCheck)
	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) setupGracefulShutdown() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go h.respondToSigterm(done)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done
	defer os.Exit(0)

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")
	h.State = ServerStateInGracePeriod
	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")
	h.State = ServerStateInCleanupPeriod
	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down.")
}

func (h *HTTP) corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowCredentials: h.Config.App.CORS.AllowCredentials,
		AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
		AllowedMethods:   h.Config.App.CORS.AllowedMethods,
		AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
		MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
	})
}

// serverStateMiddleware sends unavailable responses once the server has
// left its ready state.
func (h *HTTP) serverStateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch h.State {
		case ServerStateReady:
			next.ServeHTTP(w, r)
		case ServerStateInGracePeriod:
			w.Header().Set("X-Server-State", "shutting down")
			next.ServeHTTP(w, r)
		case ServerStateInCleanupPeriod:
			response.WithPreparingShutdown(w)
		}
	})
}

// HealthCheck performs a health check on the server. Usually required by
// Kubernetes to check if the service is healthy.
// @Summary Health Check
// @Description Health Check Endpoint
// @Tags service
// @Produce json
// @Accept json
// @Success 200
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithUnhealthy(w)
		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
