package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/models"
)

func newTestUserRepo(t *testing.T, driver string) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	wrapped := &DB{
		DB:     db,
		driver: driver,
		logger: l,
	}
	switch driver {
	case config.DriverPostgres:
		wrapped.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		wrapped.classifier = NewPostgresErrorClassifier()
	default:
		wrapped.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		wrapped.classifier = NewSQLiteErrorClassifier()
	}

	repo := &userRepository{
		db:     wrapped,
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverPostgres)
	defer db.Close()

	user := models.User{Username: "ann", Email: "ann@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation_Postgres(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "ann", Email: "ann@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolation_SQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintUnique,
		})

	_, err := repo.CreateUser(context.Background(), models.User{Username: "ann", Email: "ann@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_ExecError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection lost"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "ann", Email: "ann@example.com"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverPostgres)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "username", "email"}).
		AddRow(1, "ann", "ann@example.com").
		AddRow(2, "bob", "bob@example.com")

	mock.ExpectQuery("SELECT id, username, email FROM users").
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Username != "bob" {
		t.Errorf("unexpected second user: %+v", users[1])
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(1, "ann", "ann@example.com"))

	user, err := repo.FindUserByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "ann" {
		t.Errorf("expected username ann, got %s", user.Username)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email FROM users").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 42)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
