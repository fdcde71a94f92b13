package questions

import (
	"context"

	"github.com/avolkov/qanda/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Question, error)
	Create(ctx context.Context, question *models.Question) (*models.Question, error)
}
