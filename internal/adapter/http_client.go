package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aixmultimodal/msgboard/models"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrBadStatus marks an application failure: the server answered, but
	// with a non-2xx status. Errors that do not wrap this sentinel are
	// transport failures.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrUserNotFound is returned by GetUser for a 404 response.
	ErrUserNotFound = errors.New("user not found")
)

// HTTPClientConfig carries the settings needed to build an HTTP adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpBackendAdapter struct {
	client *resty.Client
}

// NewHTTPBackendAdapter builds a [BackendAdapter] speaking the msgboard REST
// contract over HTTP. Zero-value config fields fall back to a local server
// and a 15 second timeout.
func NewHTTPBackendAdapter(cfg HTTPClientConfig) BackendAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBackendAdapter{client: cli}
}

func (h *httpBackendAdapter) ListMessages(ctx context.Context) ([]models.Message, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/messages")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.MessagesResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return body.Messages, nil
}

func (h *httpBackendAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.UsersResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return body.Users, nil
}

func (h *httpBackendAdapter) CreateMessage(ctx context.Context, message models.Message) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post("/api/messages")
	if err != nil {
		return fmt.Errorf("create message request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) CreateUser(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/users")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.User{}, ErrUserNotFound
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var body models.UserResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return body.User, nil
}

func (h *httpBackendAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := parseDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrBadStatus, resp.StatusCode(), detail)
}

// parseDetail extracts the "detail" field the API uses for error bodies.
// Bodies that are not JSON, or carry no detail, yield the empty string.
func parseDetail(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return strings.TrimSpace(string(body))
	}
	return strings.TrimSpace(er.Detail)
}
