package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
		})

		// the old token travels in the Authorization header
		r.Post("/tokens/rotate", h.rotateToken)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/me", h.me)
			r.Patch("/me", h.updateMe)
			r.Post("/logout", h.logout)
			r.Get("/tokens", h.listTokens)
			r.Post("/tokens/revoke", h.revokeToken)
			r.Post("/tokens/revoke-all", h.revokeAllTokens)
		})
	})

	router.Route("/api/todos", func(r chi.Router) {
		r.Use(h.withCacheInvalidation(collectionTodos))

		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.With(h.withGuestCache(collectionTodos)).Get("/", h.listTodos)
			r.With(h.withGuestCache(collectionTodos)).Get("/stats", h.todoStats)
			r.Get("/{id}", h.getTodo)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/", h.createTodo)
			r.Post("/bulk-complete", h.bulkCompleteTodos)
			r.Patch("/{id}", h.updateTodo)
			r.Delete("/{id}", h.deleteTodo)
		})
	})

	router.Route("/api/notes", func(r chi.Router) {
		r.Use(h.withCacheInvalidation(collectionNotes))

		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.With(h.withGuestCache(collectionNotes)).Get("/", h.listNotes)
			r.Get("/{id}", h.getNote)
			r.Get("/{id}/html", h.noteHTML)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/", h.createNote)
			r.Patch("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	router.Route("/api/urls", func(r chi.Router) {
		r.Use(h.withCacheInvalidation(collectionURLs))

		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.With(h.withGuestCache(collectionURLs)).Get("/", h.listURLs)
			r.Post("/", h.shortenURL)
			r.Get("/{id}", h.getURL)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Patch("/{id}", h.updateURL)
			r.Delete("/{id}", h.deleteURL)
		})
	})

	router.With(h.optionalAuth).Get("/s/{code}", h.redirect)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
