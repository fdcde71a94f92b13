package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/qanda/internal/common"
	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/models"
	"github.com/avolkov/qanda/internal/server/repositories/repomanager"
)

// CategoryService exposes read access to categories.
type CategoryService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db dbx.DBTX, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	result, err := s.repomanager.Categories(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return result, nil
}

// Get returns a single category or common.ErrorNotFound.
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.repomanager.Categories(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching category: %w", err)
	}
	return c, nil
}
