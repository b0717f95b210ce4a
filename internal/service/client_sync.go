package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aixmultimodal/msgboard/internal/adapter"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/models"
)

// DefaultSender is the sender name attached to every message the client
// submits.
const DefaultSender = "User"

// User-visible error messages. Transport failures and non-2xx responses are
// collapsed into one generic message per operation category; status codes
// and error bodies are never surfaced.
const (
	MsgFetchFailed       = "Failed to fetch data from server"
	MsgServerUnreachable = "Cannot connect to server"
	MsgSendMessageFailed = "Failed to send message"
	MsgCreateUserFailed  = "Failed to create user"
)

// SyncClient owns the client's in-memory copies of the two record
// collections and reconciles them with the backend after every mutation.
//
// The reconciliation contract:
//   - Refresh fetches both collections concurrently and replaces local state
//     only when both fetches succeed; a failure on either side leaves both
//     collections untouched.
//   - Submit operations never insert locally; on success they trigger a full
//     Refresh so the collections always reflect the server's authoritative
//     view.
//   - A single error slot holds the latest failure; a successful Refresh
//     clears it.
//
// Methods are safe for concurrent use. Overlapping Refresh calls are not
// serialized: the last response to settle wins.
type SyncClient struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
	now     func() time.Time

	mu            sync.RWMutex
	messages      []models.Message
	users         []models.User
	draftMessage  string
	draftUsername string
	draftEmail    string
	loading       bool
	lastError     string
}

// ClientState is a point-in-time copy of the SyncClient's state, safe to
// render from without further locking.
type ClientState struct {
	Messages      []models.Message
	Users         []models.User
	DraftMessage  string
	DraftUsername string
	DraftEmail    string
	Loading       bool
	LastError     string
}

// NewSyncClient constructs a SyncClient with empty collections.
func NewSyncClient(backend adapter.BackendAdapter, log *logger.Logger) *SyncClient {
	return &SyncClient{
		adapter:  backend,
		logger:   log,
		now:      time.Now,
		messages: []models.Message{},
		users:    []models.User{},
	}
}

// Refresh re-synchronizes both collections with the backend. The two list
// requests are issued concurrently and joined when both settle.
//
// On dual success both collections are fully replaced (absent lists become
// empty, never nil) and the error slot is cleared. On any failure the
// collections keep their pre-call values and the error slot is set: a
// generic fetch-failure message when the server answered with a non-2xx
// status, a generic connectivity message when the request itself failed.
//
// The loading flag is true for exactly the duration of the call.
func (c *SyncClient) Refresh(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	var (
		wg       sync.WaitGroup
		messages []models.Message
		users    []models.User
		msgErr   error
		usrErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		messages, msgErr = c.adapter.ListMessages(ctx)
	}()
	go func() {
		defer wg.Done()
		users, usrErr = c.adapter.ListUsers(ctx)
	}()
	wg.Wait()

	if err := errors.Join(msgErr, usrErr); err != nil {
		c.logger.Err(err).Str("func", "*SyncClient.Refresh").Msg("refresh failed")
		if errors.Is(err, adapter.ErrBadStatus) {
			c.setError(MsgFetchFailed)
		} else {
			c.setError(MsgServerUnreachable)
		}
		return err
	}

	if messages == nil {
		messages = []models.Message{}
	}
	if users == nil {
		users = []models.User{}
	}

	c.mu.Lock()
	c.messages = messages
	c.users = users
	c.lastError = ""
	c.mu.Unlock()

	return nil
}

// SubmitMessage posts the draft as a new message. A draft that is empty or
// whitespace-only after trimming is rejected silently: no request is sent
// and no state changes.
//
// On success the draft is cleared and a Refresh reconciles local state with
// the server. On failure the draft is preserved for retry and the error slot
// is set; no local insert ever happens.
func (c *SyncClient) SubmitMessage(ctx context.Context, draft string) error {
	if strings.TrimSpace(draft) == "" {
		return nil
	}

	c.mu.Lock()
	c.draftMessage = draft
	c.mu.Unlock()

	message := models.Message{
		Content:   draft,
		Sender:    DefaultSender,
		Timestamp: c.now().UTC().Format(time.RFC3339),
	}

	if err := c.adapter.CreateMessage(ctx, message); err != nil {
		c.logger.Err(err).Str("func", "*SyncClient.SubmitMessage").Msg("send failed")
		c.setError(MsgSendMessageFailed)
		return err
	}

	c.mu.Lock()
	c.draftMessage = ""
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SubmitUser posts a new user. Both fields must be non-empty after trimming;
// otherwise the call is a silent no-op. Success and failure behave like
// [SyncClient.SubmitMessage].
func (c *SyncClient) SubmitUser(ctx context.Context, username, email string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return nil
	}

	c.mu.Lock()
	c.draftUsername = username
	c.draftEmail = email
	c.mu.Unlock()

	if err := c.adapter.CreateUser(ctx, models.User{Username: username, Email: email}); err != nil {
		c.logger.Err(err).Str("func", "*SyncClient.SubmitUser").Msg("create user failed")
		c.setError(MsgCreateUserFailed)
		return err
	}

	c.mu.Lock()
	c.draftUsername = ""
	c.draftEmail = ""
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// State returns a copy of the current client state.
func (c *SyncClient) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	messages := make([]models.Message, len(c.messages))
	copy(messages, c.messages)
	users := make([]models.User, len(c.users))
	copy(users, c.users)

	return ClientState{
		Messages:      messages,
		Users:         users,
		DraftMessage:  c.draftMessage,
		DraftUsername: c.draftUsername,
		DraftEmail:    c.draftEmail,
		Loading:       c.loading,
		LastError:     c.lastError,
	}
}

// IsLoading reports whether a Refresh is in flight.
func (c *SyncClient) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// LastError returns the current content of the error slot; empty means the
// last synchronization succeeded.
func (c *SyncClient) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *SyncClient) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *SyncClient) setError(message string) {
	c.mu.Lock()
	c.lastError = message
	c.mu.Unlock()
}
