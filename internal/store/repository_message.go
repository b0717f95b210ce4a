package store

import (
	"context"
	"fmt"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/models"
)

// messageRepository is the SQL-backed implementation of [MessageRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// ListMessages returns every stored message ordered by ID, oldest first,
// so SQL backends expose the same ordering as the memory backend.
func (r *messageRepository) ListMessages(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "content", "sender", "timestamp").
		From(models.Message{}.TableName()).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error executing select")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err = rows.Scan(&m.ID, &m.Content, &m.Sender, &m.Timestamp); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error: scanning error")
			return nil, err
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return messages, nil
}

// CreateMessage persists a new message and returns it with the
// server-assigned ID.
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.
		Insert(models.Message{}.TableName()).
		Columns("content", "sender", "timestamp").
		Values(message.Content, message.Sender, message.Timestamp)

	if r.db.supportsReturning() {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return models.Message{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&message.ID); err != nil {
			log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error executing insert")
			return models.Message{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
		return message, nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error executing insert")
		return models.Message{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	message.ID, err = result.LastInsertId()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return message, nil
}
