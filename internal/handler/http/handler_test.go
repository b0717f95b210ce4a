package http

import (
	"context"
	"net/http/httptest"

	"github.com/aixmultimodal/msgboard/internal/config"
	"github.com/aixmultimodal/msgboard/internal/logger"
	"github.com/aixmultimodal/msgboard/internal/service"
	"github.com/aixmultimodal/msgboard/models"
)

// Function-field fakes keep handler tests independent of the real service
// layer.

type fakeMessageService struct {
	listMessages  func(ctx context.Context) ([]models.Message, error)
	createMessage func(ctx context.Context, message models.Message) (models.Message, error)
}

func (f *fakeMessageService) ListMessages(ctx context.Context) ([]models.Message, error) {
	return f.listMessages(ctx)
}

func (f *fakeMessageService) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return f.createMessage(ctx, message)
}

type fakeUserService struct {
	listUsers  func(ctx context.Context) ([]models.User, error)
	createUser func(ctx context.Context, user models.User) (models.User, error)
	getUser    func(ctx context.Context, id int64) (models.User, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsers(ctx)
}

func (f *fakeUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUser(ctx, user)
}

func (f *fakeUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return f.getUser(ctx, id)
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func newTestServer(messageSvc service.MessageService, userSvc service.UserService, pinger *fakePinger) *httptest.Server {
	services := &service.Services{
		MessageService: messageSvc,
		UserService:    userSvc,
	}
	if pinger != nil {
		services.Pinger = pinger
	}

	cfg := &config.ServerConfig{}
	cfg.App.Version = "1.0.0"
	cfg.Server.CORSOrigins = config.DefaultCORSOrigins()

	h := NewHandler(services, cfg, logger.Nop())
	return httptest.NewServer(h.Init())
}
