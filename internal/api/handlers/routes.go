package handlers

import "github.com/go-chi/chi/v5"

// setRoutes объявим роуты, используя маршрутизатор chi
func (h *handler) setRoutes() {
	h.r.Post("/signup", h.signup)
	h.r.Post("/login", h.login)

	h.r.Route("/books", func(r chi.Router) {
		r.Post("/", h.postBook)
		r.Get("/", h.getBooks)

		r.Get("/{bookID}", h.getBook)
		r.Put("/{bookID}", h.putBook)
		r.Delete("/{bookID}", h.deleteBook)
	})
}
