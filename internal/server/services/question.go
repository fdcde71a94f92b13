package services

import (
	"context"
	"fmt"

	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/models"
	"github.com/avolkov/qanda/internal/server/repositories/repomanager"
)

// QuestionService exposes question reads and token-gated creation.
type QuestionService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewQuestionService(db dbx.DBTX, m repomanager.RepositoryManager) *QuestionService {
	return &QuestionService{db: db, repomanager: m}
}

// List returns all questions, newest first.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	result, err := s.repomanager.Questions(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	return result, nil
}

// ListByCategory returns the questions of one category, newest first.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	result, err := s.repomanager.Questions(s.db).ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("error listing questions by category: %w", err)
	}
	return result, nil
}

// Create posts a new question; the store assigns the id.
func (s *QuestionService) Create(ctx context.Context, categoryID int64, title string) (*models.Question, error) {
	q := &models.Question{Title: title, CategoryID: categoryID}
	q, err := s.repomanager.Questions(s.db).Create(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	return q, nil
}
