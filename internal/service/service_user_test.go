package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/mock"
	"github.com/aixmultimodal/msgboard/internal/store"
	"github.com/aixmultimodal/msgboard/models"
)

func newTestUserSvc(t *testing.T) (*userService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop()).(*userService)
	return svc, repo
}

func TestUserService_ListUsers_NeverNil(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_CreateUser_BlankFields(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "blank username", username: "  ", email: "ann@example.com"},
		{name: "blank email", username: "ann", email: ""},
		{name: "both blank", username: "", email: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), models.User{Username: tt.username, Email: tt.email})
			assert.ErrorIs(t, err, ErrEmptyUserFields)
		})
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	input := models.User{Username: "ann", Email: "ann@example.com"}
	repo.EXPECT().
		CreateUser(gomock.Any(), input).
		Return(models.User{ID: 1, Username: "ann", Email: "ann@example.com"}, nil)

	created, err := svc.CreateUser(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), models.User{Username: "ann", Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestUserService_GetUser_Success(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, Username: "ann", Email: "ann@example.com"}, nil)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().
		FindUserByID(gomock.Any(), int64(42)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
