package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/avolkov/qanda/internal/common"
	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/auth"
	"github.com/avolkov/qanda/internal/server/models"
	"github.com/avolkov/qanda/internal/server/repositories/answers"
	"github.com/avolkov/qanda/internal/server/repositories/categories"
	"github.com/avolkov/qanda/internal/server/repositories/questions"
	"github.com/avolkov/qanda/internal/server/repositories/users"
)

// ---- fakes ----

type fakeUsersRepo struct {
	byEmail    *models.User
	byEmailErr error

	createErr    error
	createCalled bool
	nextID       int64
	created      *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.createCalled = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	user.ID = f.nextID
	f.created = user
	return user, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail, f.byEmailErr
}

type fakeManager struct {
	users users.Repository
}

func (f *fakeManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeManager) Users(db dbx.DBTX) users.Repository                  { return f.users }
func (f *fakeManager) Categories(db dbx.DBTX) categories.Repository        { return nil }
func (f *fakeManager) Questions(db dbx.DBTX) questions.Repository          { return nil }
func (f *fakeManager) Answers(db dbx.DBTX) answers.Repository              { return nil }

// ---- helpers ----

// openDB provides a database handle the transaction wrapper can begin and
// commit against; the fake repositories never touch it.
func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newUserService(t *testing.T, repo *fakeUsersRepo) (*UserService, *auth.TokenCodec) {
	t.Helper()
	codec := auth.NewTokenCodec([]byte("test-secret"), time.Hour)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	return NewUserService(openDB(t), &fakeManager{users: repo}, hasher, codec), codec
}

func TestSignup_Success(t *testing.T) {
	repo := &fakeUsersRepo{byEmailErr: common.ErrorNotFound, nextID: 1}
	svc, codec := newUserService(t, repo)

	user, token, err := svc.Signup(context.Background(), "Ada", "ada@x.com", "s3cret!")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if user.ID != 1 || user.Name != "Ada" || user.Email != "ada@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if repo.created.PasswordHash == "" || repo.created.PasswordHash == "s3cret!" {
		t.Fatal("expected stored password hash, not plaintext")
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestSignup_EmailTaken(t *testing.T) {
	repo := &fakeUsersRepo{byEmail: &models.User{ID: 1, Email: "ada@x.com"}}
	svc, _ := newUserService(t, repo)

	_, _, err := svc.Signup(context.Background(), "Ada", "ada@x.com", "s3cret!")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
	if repo.createCalled {
		t.Fatal("no insert may happen for a taken email")
	}
}

func TestSignup_ConcurrentDuplicateLosesWithConflict(t *testing.T) {
	// the uniqueness check passed, but the insert hit the DB constraint
	repo := &fakeUsersRepo{byEmailErr: common.ErrorNotFound, createErr: common.ErrorAlreadyExists}
	svc, _ := newUserService(t, repo)

	_, _, err := svc.Signup(context.Background(), "Ada", "ada@x.com", "s3cret!")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestSignup_StoreFailureKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	repo := &fakeUsersRepo{byEmailErr: cause}
	svc, _ := newUserService(t, repo)

	_, _, err := svc.Signup(context.Background(), "Ada", "ada@x.com", "s3cret!")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped store cause, got %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreUniform(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("right-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	unknown := &fakeUsersRepo{byEmailErr: common.ErrorNotFound}
	svcUnknown, _ := newUserService(t, unknown)
	_, _, errUnknown := svcUnknown.Login(context.Background(), "ghost@x.com", "whatever")

	known := &fakeUsersRepo{byEmail: &models.User{ID: 1, Email: "ada@x.com", PasswordHash: hash}}
	svcKnown, _ := newUserService(t, known)
	_, _, errWrong := svcKnown.Login(context.Background(), "ada@x.com", "wrong-password")

	if !errors.Is(errUnknown, common.ErrorUnauthorized) {
		t.Fatalf("unknown email: want common.ErrorUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want common.ErrorUnauthorized, got %v", errWrong)
	}
	if errUnknown != errWrong {
		t.Fatal("both failure modes must be indistinguishable")
	}
}

func TestLogin_StoreFailureKeepsCause(t *testing.T) {
	cause := errors.New("connection refused to 10.0.0.5:5432")
	repo := &fakeUsersRepo{byEmailErr: cause}
	svc, _ := newUserService(t, repo)

	_, _, err := svc.Login(context.Background(), "ada@x.com", "whatever")
	if errors.Is(err, common.ErrorUnauthorized) {
		t.Fatal("a store failure must not masquerade as bad credentials")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped store cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("cause detail missing from error: %v", err)
	}
}

func TestLogin_MalformedDigestKeepsCause(t *testing.T) {
	repo := &fakeUsersRepo{byEmail: &models.User{ID: 1, Email: "ada@x.com", PasswordHash: "not-a-bcrypt-digest"}}
	svc, _ := newUserService(t, repo)

	_, _, err := svc.Login(context.Background(), "ada@x.com", "whatever")
	if err == nil || errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("a malformed digest is an internal failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "verifying password") {
		t.Fatalf("cause detail missing from error: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret!")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	repo := &fakeUsersRepo{byEmail: &models.User{ID: 7, Name: "Ada", Email: "ada@x.com", PasswordHash: hash}}
	svc, codec := newUserService(t, repo)

	user, token, err := svc.Login(context.Background(), "ada@x.com", "s3cret!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "ada@x.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}
