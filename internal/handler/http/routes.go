package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(middleware.Compress(compressionLevel))

		r.Get("/api/version", h.getServerVersion)

		r.Route("/api/users", func(r chi.Router) {
			// routes without authorization
			r.Post("/verify", h.verifyEmail)
			r.Post("/login", h.login)
			r.Post("/signup", h.register)
			r.Post("/register", h.register)
			r.Get("/auth", h.checkAuth)

			// routes for any bearer
			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Post("/sendTokens", h.sendTokens)
				r.Post("/sendPoints", h.sendTokens)

				r.With(h.private).Get("/{id}", h.getUser)
				r.With(h.private).Put("/changePassword/{id}", h.changePassword)
			})

			// admin routes
			r.Group(func(r chi.Router) {
				r.Use(h.admin)

				r.Get("/", h.listUsers)
				r.Put("/{id}", h.updateUser)
				r.Put("/update/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
				r.Delete("/delete/{id}", h.deleteUser)
			})
		})
	})

	return router
}
