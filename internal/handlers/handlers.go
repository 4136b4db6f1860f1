package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/referralmart/docs"
	authhandlers "github.com/GlebRadaev/referralmart/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/referralmart/internal/handlers/orders"
	pointshandlers "github.com/GlebRadaev/referralmart/internal/handlers/points"
	"github.com/GlebRadaev/referralmart/internal/service"
	"github.com/GlebRadaev/referralmart/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	OrderCompleted(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetCapability(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	OrderHandler  OrderHandler
	PointsHandler PointsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		OrderHandler:  ordershandlers.New(s.CommissionService, s.PointsService),
		PointsHandler: pointshandlers.New(s.PointsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		// Called by the payment/order subsystem, not by end users.
		r.Post("/orders/complete", h.OrderHandler.OrderCompleted)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/commissions", h.OrderHandler.GetEarnings)
				r.Route("/points", func(r chi.Router) {
					r.Get("/", h.PointsHandler.GetBalance)
					r.Post("/convert", h.PointsHandler.Convert)
					r.Get("/transactions", h.PointsHandler.GetTransactions)
					r.Get("/capability", h.PointsHandler.GetCapability)
				})
			})
		})
	})

	return r
}
