package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type createAnswerRequest struct {
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
}

func (s *HTTPServer) handleAnswers(w http.ResponseWriter, r *http.Request) {
	result, err := s.answers.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "Error fetching answers", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error fetching answers")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleAnswersByQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	result, err := s.answers.ListByQuestion(r.Context(), id)
	if err != nil {
		s.logger.Error(r.Context(), "Error fetching answers by question", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error fetching answers")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		// requireAuth guarantees claims; reaching this is a routing bug
		respondMessage(w, http.StatusUnauthorized, "Missing token")
		return
	}

	var req createAnswerRequest
	if err := decodeRequest(r, &req, func() bool {
		return req.QuestionID != 0 && req.Answer != ""
	}); err != nil {
		respondMessage(w, http.StatusBadRequest, "questionId and answer are required")
		return
	}

	a, err := s.answers.Create(r.Context(), req.QuestionID, claims.UserID, req.Answer)
	if err != nil {
		s.logger.Error(r.Context(), "Create answer error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Create answer failed")
		return
	}
	respondJSON(w, http.StatusCreated, a)
}
