// Package server initializes and runs the Q&A backend. It loads configuration,
// opens the database, runs migrations, and starts the HTTP server with
// graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avolkov/qanda/internal/logging"
	"github.com/avolkov/qanda/internal/server/auth"
	"github.com/avolkov/qanda/internal/server/config"
	"github.com/avolkov/qanda/internal/server/httpapi"
	"github.com/avolkov/qanda/internal/server/repositories/repomanager"
	"github.com/avolkov/qanda/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	codec           *auth.TokenCodec
	userService     *services.UserService
	categoryService *services.CategoryService
	questionService *services.QuestionService
	answerService   *services.AnswerService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()

	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewPasswordHasher(c.BcryptCost)
	codec := auth.NewTokenCodec([]byte(c.SecretKey), c.TokenValidityDuration)

	us := services.NewUserService(db, m, hasher, codec)
	cs := services.NewCategoryService(db, m)
	qs := services.NewQuestionService(db, m)
	as := services.NewAnswerService(db, m)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		codec:           codec,
		userService:     us,
		categoryService: cs,
		questionService: qs,
		answerService:   as,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.codec, app.userService, app.categoryService, app.questionService, app.answerService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
