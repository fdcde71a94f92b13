package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/qanda/internal/common"
)

func (s *HTTPServer) handleCategories(w http.ResponseWriter, r *http.Request) {
	// ?id=N is an alias for /api/categories/{id} kept for the SPA client
	if q := r.URL.Query().Get("id"); q != "" {
		id, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		s.respondCategory(w, r, id, "Error fetching categories")
		return
	}

	result, err := s.categories.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "Error fetching categories", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	s.respondCategory(w, r, id, "Error fetching category")
}

func (s *HTTPServer) respondCategory(w http.ResponseWriter, r *http.Request, id int64, failureMessage string) {
	c, err := s.categories.Get(r.Context(), id)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, c)
	case errors.Is(err, common.ErrorNotFound):
		respondMessage(w, http.StatusNotFound, "Category not found")
	default:
		s.logger.Error(r.Context(), failureMessage, "error", err)
		respondMessage(w, http.StatusInternalServerError, failureMessage)
	}
}
