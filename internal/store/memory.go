package store

import (
	"context"
	"sync"

	"github.com/aixmultimodal/msgboard/models"
)

// memoryStore keeps both collections in process memory. It is the default
// backend; records live in two in-process lists and vanish on restart. IDs
// are assigned sequentially per collection starting at 1.
type memoryStore struct {
	mu sync.RWMutex

	messages      []models.Message
	users         []models.User
	nextMessageID int64
	nextUserID    int64
}

// NewMemoryStore constructs an empty in-memory store implementing
// [MessageRepository], [UserRepository], and [Pinger].
func NewMemoryStore() *memoryStore {
	return &memoryStore{
		nextMessageID: 1,
		nextUserID:    1,
	}
}

func (s *memoryStore) ListMessages(_ context.Context) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *memoryStore) CreateMessage(_ context.Context, message models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = s.nextMessageID
	s.nextMessageID++
	s.messages = append(s.messages, message)
	return message, nil
}

func (s *memoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

func (s *memoryStore) FindUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (s *memoryStore) Ping(_ context.Context) error {
	return nil
}
