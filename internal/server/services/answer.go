package services

import (
	"context"
	"fmt"

	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/models"
	"github.com/avolkov/qanda/internal/server/repositories/repomanager"
)

// AnswerService exposes answer reads and token-gated creation.
type AnswerService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewAnswerService(db dbx.DBTX, m repomanager.RepositoryManager) *AnswerService {
	return &AnswerService{db: db, repomanager: m}
}

// List returns all answers, newest first.
func (s *AnswerService) List(ctx context.Context) ([]models.Answer, error) {
	result, err := s.repomanager.Answers(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing answers: %w", err)
	}
	return result, nil
}

// ListByQuestion returns the answers of one question, newest first.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	result, err := s.repomanager.Answers(s.db).ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("error listing answers by question: %w", err)
	}
	return result, nil
}

// Create posts a new answer attributed to the authenticated author.
func (s *AnswerService) Create(ctx context.Context, questionID, authorID int64, answer string) (*models.Answer, error) {
	a := &models.Answer{Answer: answer, QuestionID: questionID, AuthorID: &authorID}
	a, err := s.repomanager.Answers(s.db).Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("error creating answer: %w", err)
	}
	return a, nil
}
