package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user creation and lookup against the "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// ListUsers returns every stored user ordered by ID, oldest first.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "username", "email").
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing select")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, err
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return users, nil
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID.
//
// Error handling:
//   - driver unique violation on the email index → [ErrEmailAlreadyExists]
//   - any other driver-level error → wrapped as [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.
		Insert(models.User{}.TableName()).
		Columns("username", "email").
		Values(user.Username, user.Email)

	if r.db.supportsReturning() {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
			if r.db.classifier.IsUniqueViolation(err) {
				return models.User{}, ErrEmailAlreadyExists
			}
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")
			return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
		return user, nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	user.ID, err = result.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByID retrieves the user record with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "username", "email").
		From(models.User{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error executing select")
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return user, nil
}
