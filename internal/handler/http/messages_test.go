package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aixmultimodal/msgboard/internal/service"
	"github.com/aixmultimodal/msgboard/models"
)

func TestListMessages(t *testing.T) {
	messageSvc := &fakeMessageService{
		listMessages: func(ctx context.Context) ([]models.Message, error) {
			return []models.Message{
				{ID: 1, Content: "hello", Sender: "User", Timestamp: "2026-08-30T10:00:00Z"},
				{ID: 2, Content: "world", Sender: "User", Timestamp: "2026-08-30T10:01:00Z"},
			}, nil
		},
	}
	srv := newTestServer(messageSvc, nil, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.MessagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "hello", body.Messages[0].Content)
}

func TestListMessages_EmptyCollection(t *testing.T) {
	messageSvc := &fakeMessageService{
		listMessages: func(ctx context.Context) ([]models.Message, error) {
			return []models.Message{}, nil
		},
	}
	srv := newTestServer(messageSvc, nil, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body models.MessagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Messages)
	assert.Empty(t, body.Messages)
}

func TestListMessages_ServiceError(t *testing.T) {
	messageSvc := &fakeMessageService{
		listMessages: func(ctx context.Context) ([]models.Message, error) {
			return nil, assert.AnError
		},
	}
	srv := newTestServer(messageSvc, nil, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Detail)
}

func TestCreateMessage_Success(t *testing.T) {
	messageSvc := &fakeMessageService{
		createMessage: func(ctx context.Context, message models.Message) (models.Message, error) {
			message.ID = 5
			return message, nil
		},
	}
	srv := newTestServer(messageSvc, nil, nil)
	defer srv.Close()

	payload, _ := json.Marshal(models.Message{Content: "hello", Sender: "User", Timestamp: "2026-08-30T10:00:00Z"})
	resp, err := http.Post(srv.URL+"/api/messages", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body models.CreateMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Message created successfully", body.Message)
	assert.Equal(t, int64(5), body.Data.ID)
}

func TestCreateMessage_EmptyContent(t *testing.T) {
	messageSvc := &fakeMessageService{
		createMessage: func(ctx context.Context, message models.Message) (models.Message, error) {
			return models.Message{}, service.ErrEmptyContent
		},
	}
	srv := newTestServer(messageSvc, nil, nil)
	defer srv.Close()

	payload, _ := json.Marshal(models.Message{Content: "   ", Sender: "User"})
	resp, err := http.Post(srv.URL+"/api/messages", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Message content must not be empty", body.Detail)
}

func TestCreateMessage_InvalidJSON(t *testing.T) {
	srv := newTestServer(&fakeMessageService{}, nil, nil)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/messages", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
