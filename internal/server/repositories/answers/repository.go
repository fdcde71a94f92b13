package answers

import (
	"context"

	"github.com/avolkov/qanda/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error)
	Create(ctx context.Context, answer *models.Answer) (*models.Answer, error)
}
