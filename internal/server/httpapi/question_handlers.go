package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type createQuestionRequest struct {
	CategoryID int64  `json:"categoryId"`
	Title      string `json:"title"`
}

func (s *HTTPServer) handleQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := s.questions.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "Error fetching questions", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error fetching questions")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	result, err := s.questions.ListByCategory(r.Context(), id)
	if err != nil {
		s.logger.Error(r.Context(), "Error fetching questions by category", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error fetching questions")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeRequest(r, &req, func() bool {
		return req.CategoryID != 0 && strings.TrimSpace(req.Title) != ""
	}); err != nil {
		respondMessage(w, http.StatusBadRequest, "categoryId and title are required")
		return
	}

	q, err := s.questions.Create(r.Context(), req.CategoryID, strings.TrimSpace(req.Title))
	if err != nil {
		s.logger.Error(r.Context(), "Create question error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Create question failed")
		return
	}
	respondJSON(w, http.StatusCreated, q)
}
