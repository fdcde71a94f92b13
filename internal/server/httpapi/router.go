package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the full route table, including the legacy redirect aliases
// the SPA client still links to.
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleRoot)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleAPIRoot)

		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/categories", s.handleCategories)
		r.Get("/categories/{id}", s.handleCategoryByID)
		r.Get("/category/{id}", redirectCategory)

		r.Get("/questions", s.handleQuestions)
		r.Get("/questions/by-category/{id}", s.handleQuestionsByCategory)
		r.With(s.requireAuth).Post("/questions", s.handleCreateQuestion)

		r.Get("/answers", s.handleAnswers)
		r.Get("/answers/by-question/{id}", s.handleAnswersByQuestion)
		r.With(s.requireAuth).Post("/answers", s.handleCreateAnswer)

		// wrong-method requests fall through to the same JSON 404
		notFound := func(w http.ResponseWriter, r *http.Request) {
			respondMessage(w, http.StatusNotFound, "API endpoint not found")
		}
		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)
	})

	// pre-API paths still found in old bookmarks
	r.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/categories", http.StatusMovedPermanently)
	})
	r.Get("/categories/{id}", redirectCategory)

	pageNotFound := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Page not found"))
	}
	r.NotFound(pageNotFound)
	r.MethodNotAllowed(pageNotFound)

	return r
}

func redirectCategory(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/categories/"+chi.URLParam(r, "id"), http.StatusMovedPermanently)
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("Q&A backend root. Try GET /api for health, /api/categories for data."))
}

func (s *HTTPServer) handleAPIRoot(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("Welcome to the Q&A API!"))
}
