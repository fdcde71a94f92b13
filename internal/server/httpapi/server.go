// Package httpapi exposes the service over a JSON REST API: public auth and
// read endpoints plus token-gated write endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avolkov/qanda/internal/logging"
	"github.com/avolkov/qanda/internal/server/auth"
	"github.com/avolkov/qanda/internal/server/models"
)

type userSvc interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type categorySvc interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
}

type questionSvc interface {
	List(ctx context.Context) ([]models.Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Question, error)
	Create(ctx context.Context, categoryID int64, title string) (*models.Question, error)
}

type answerSvc interface {
	List(ctx context.Context) ([]models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error)
	Create(ctx context.Context, questionID, authorID int64, answer string) (*models.Answer, error)
}

type HTTPServer struct {
	address    string
	logger     logging.Logger
	codec      *auth.TokenCodec
	users      userSvc
	categories categorySvc
	questions  questionSvc
	answers    answerSvc
}

func NewHTTPServer(a string, l logging.Logger, codec *auth.TokenCodec, us userSvc, cs categorySvc, qs questionSvc, as answerSvc) (*HTTPServer, error) {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		codec:      codec,
		users:      us,
		categories: cs,
		questions:  qs,
		answers:    as,
	}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
