package questions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Question, error) {
	query :=
		`SELECT id, title, category_id FROM questions
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	query :=
		`SELECT id, title, category_id FROM questions
		 WHERE category_id = $1
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// Create inserts a new question; the store assigns the id.
func (r *PostgresRepository) Create(ctx context.Context, question *models.Question) (*models.Question, error) {
	query :=
		`INSERT INTO questions (title, category_id)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, question.Title, question.CategoryID).Scan(&question.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return question, nil
}

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	result := make([]models.Question, 0)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.CategoryID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
