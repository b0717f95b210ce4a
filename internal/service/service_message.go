package service

import (
	"context"
	"strings"
	"time"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/store"
	"github.com/aixmultimodal/msgboard/models"
)

type messageService struct {
	messageRepository store.MessageRepository

	logger *logger.Logger
	now    func() time.Time
}

// NewMessageService constructs a [MessageService] backed by the given
// repository.
func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *messageService) ListMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messageRepository.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (s *messageService) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	if strings.TrimSpace(message.Content) == "" {
		return models.Message{}, ErrEmptyContent
	}

	// Server-assigned fields: the ID always, the timestamp only when the
	// client left it blank.
	message.ID = 0
	if message.Timestamp == "" {
		message.Timestamp = s.now().UTC().Format(time.RFC3339)
	}

	created, err := s.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.CreateMessage").Msg("error saving message")
		return models.Message{}, err
	}

	return created, nil
}
