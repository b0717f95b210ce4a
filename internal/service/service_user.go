package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/store"
	"github.com/aixmultimodal/msgboard/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if strings.TrimSpace(user.Username) == "" || strings.TrimSpace(user.Email) == "" {
		return models.User{}, ErrEmptyUserFields
	}

	user.ID = 0

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyTaken
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateUser").Msg("error saving user")
		return models.User{}, err
	}

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
