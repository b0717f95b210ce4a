package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aixmultimodal/msgboard/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) BackendAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPBackendAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestListMessages_DecodesEnvelope(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/messages", r.URL.Path)
		json.NewEncoder(w).Encode(models.MessagesResponse{Messages: []models.Message{
			{ID: 1, Content: "hello", Sender: "User", Timestamp: "2026-08-30T10:00:00Z"},
		}})
	}))

	messages, err := backend.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
}

func TestListMessages_MissingListIsNil(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	messages, err := backend.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Nil(t, messages)
}

func TestListMessages_BadStatus(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "boom"})
	}))

	_, err := backend.ListMessages(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "boom")
}

func TestListMessages_TransportFailureIsNotBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	backend := NewHTTPBackendAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := backend.ListMessages(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBadStatus), "connection errors must not be classified as status errors")
}

func TestListUsers_DecodesEnvelope(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		json.NewEncoder(w).Encode(models.UsersResponse{Users: []models.User{
			{ID: 1, Username: "ann", Email: "ann@example.com"},
		}})
	}))

	users, err := backend.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ann", users[0].Username)
}

func TestCreateMessage_PostsJSON(t *testing.T) {
	var received models.Message
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.CreateMessageResponse{Message: "Message created successfully", Data: received})
	}))

	err := backend.CreateMessage(context.Background(), models.Message{Content: "hi", Sender: "User", Timestamp: "2026-08-30T10:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "hi", received.Content)
	assert.Equal(t, "User", received.Sender)
}

func TestCreateUser_DuplicateEmailWrapsBadStatus(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "User with this email already exists"})
	}))

	err := backend.CreateUser(context.Background(), models.User{Username: "ann", Email: "ann@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "User with this email already exists")
}

func TestGetUser_Success(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7", r.URL.Path)
		json.NewEncoder(w).Encode(models.UserResponse{User: models.User{ID: 7, Username: "ann", Email: "ann@example.com"}})
	}))

	user, err := backend.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestGetUser_NotFound(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "User not found"})
	}))

	_, err := backend.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHealth(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(models.HealthResponse{Status: "healthy", Service: "AIxMultimodal API"})
	}))

	assert.NoError(t, backend.Health(context.Background()))
}

func TestHealth_Unavailable(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	assert.ErrorIs(t, backend.Health(context.Background()), ErrBadStatus)
}

func TestContextCancellation(t *testing.T) {
	backend := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := backend.ListMessages(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBadStatus))
}
