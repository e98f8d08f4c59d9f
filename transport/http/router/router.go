package router

import (
	authHandler "balai/internal/handlers/auth"
	catalogHandler "balai/internal/handlers/catalog"
	guestHandler "balai/internal/handlers/guest"
	invoiceHandler "balai/internal/handlers/invoice"
	reportHandler "balai/internal/handlers/report"
	reservationHandler "balai/internal/handlers/reservation"
	roomHandler "balai/internal/handlers/room"
	roomTypeHandler "balai/internal/handlers/roomtype"
	staffHandler "balai/internal/handlers/staff"
	stayHandler "balai/internal/handlers/stay"
	"balai/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router sets up the service's routes on a chi mux.
type Router interface {
	SetupRoutes(mux *chi.Mux)
}

// DomainHandlers gathers every domain's HTTP handler for wiring.
type DomainHandlers struct {
	AuthHandler        *authHandler.Handler
	GuestHandler       *guestHandler.Handler
	RoomTypeHandler    *roomTypeHandler.Handler
	RoomHandler        *roomHandler.Handler
	CatalogHandler     *catalogHandler.Handler
	ReservationHandler *reservationHandler.Handler
	StayHandler        *stayHandler.Handler
	InvoiceHandler     *invoiceHandler.Handler
	StaffHandler       *staffHandler.Handler
	ReportHandler      *reportHandler.Handler
}

type router struct {
	handlers DomainHandlers
	app      *middleware.App
	auth     *middleware.Auth
}

// ProvideRouter is the provider for Router.
func ProvideRouter(handlers DomainHandlers, app *middleware.App, auth *middleware.Auth) Router {
	return &router{
		handlers: handlers,
		app:      app,
		auth:     auth,
	}
}

func (r *router) SetupRoutes(mux *chi.Mux) {
	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	mux.Route("/v1", func(rc chi.Router) {
		rc.Use(r.app.Tracing)
		rc.Use(r.app.RateLimit)

		// Session endpoints stay outside the auth guard.
		r.handlers.AuthHandler.PublicRouter(rc)

		rc.Group(func(rp chi.Router) {
			rp.Use(r.auth.Authenticate)
			rp.Use(r.auth.Authorize)

			r.handlers.AuthHandler.Router(rp)
			r.handlers.GuestHandler.Router(rp)
			r.handlers.RoomTypeHandler.Router(rp)
			r.handlers.RoomHandler.Router(rp)
			r.handlers.CatalogHandler.Router(rp)
			r.handlers.ReservationHandler.Router(rp)
			r.handlers.StayHandler.Router(rp)
			r.handlers.InvoiceHandler.Router(rp)
			r.handlers.StaffHandler.Router(rp)
			r.handlers.ReportHandler.Router(rp)
		})
	})
}
