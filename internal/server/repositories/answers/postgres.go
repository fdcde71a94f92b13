package answers

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Answer, error) {
	query :=
		`SELECT id, answer, question_id, author_id FROM answers
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

func (r *PostgresRepository) ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	query :=
		`SELECT id, answer, question_id, author_id FROM answers
		 WHERE question_id = $1
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

// Create inserts a new answer; the store assigns the id.
func (r *PostgresRepository) Create(ctx context.Context, answer *models.Answer) (*models.Answer, error) {
	query :=
		`INSERT INTO answers (answer, question_id, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, answer.Answer, answer.QuestionID, answer.AuthorID).Scan(&answer.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return answer, nil
}

func scanAnswers(rows *sql.Rows) ([]models.Answer, error) {
	result := make([]models.Answer, 0)
	for rows.Next() {
		var a models.Answer
		var author sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Answer, &a.QuestionID, &author); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if author.Valid {
			a.AuthorID = &author.Int64
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
