package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/repositories/answers"
	"github.com/avolkov/qanda/internal/server/repositories/categories"
	"github.com/avolkov/qanda/internal/server/repositories/questions"
	"github.com/avolkov/qanda/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Questions(db dbx.DBTX) questions.Repository
	Answers(db dbx.DBTX) answers.Repository
}
