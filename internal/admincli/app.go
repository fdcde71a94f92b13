// Package admincli is an interactive tool for operators. It creates user
// accounts directly in the database, bypassing the HTTP signup endpoint, which
// is handy for seeding a fresh deployment or recovering access.
package admincli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avolkov/qanda/internal/common"
	"github.com/avolkov/qanda/internal/logging"
	"github.com/avolkov/qanda/internal/server/auth"
	"github.com/avolkov/qanda/internal/server/config"
	"github.com/avolkov/qanda/internal/server/repositories/repomanager"
	"github.com/avolkov/qanda/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return &App{
		config: c,
		logger: logger,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (app *App) Run(ctx context.Context) error {
	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return app.createUser(ctx, db, m)
}

func (app *App) createUser(ctx context.Context, db *sql.DB, m repomanager.RepositoryManager) error {
	name, err := GetSimpleText(app.in, "Name", app.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(app.in, "Email", app.out)
	if err != nil {
		return err
	}
	if name == "" || email == "" {
		return errors.New("name and email are required")
	}

	password, err := GetPassword(app.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword(app.out, "Repeat password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if len(password) == 0 {
		return errors.New("password is required")
	}
	if !bytes.Equal(password, confirm) {
		return errors.New("passwords do not match")
	}

	// same path a signup request takes, minus the HTTP layer
	hasher := auth.NewPasswordHasher(app.config.BcryptCost)
	codec := auth.NewTokenCodec([]byte(app.config.SecretKey), app.config.TokenValidityDuration)
	svc := services.NewUserService(db, m, hasher, codec)

	user, _, err := svc.Signup(ctx, name, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("email %s is already registered", email)
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	fmt.Fprintf(app.out, "Created user %d (%s)\n", user.ID, user.Email)
	return nil
}
