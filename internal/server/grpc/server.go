// Package grpc exposes the lifeweeks services over gRPC using the JSON
// codec from internal/api.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, r services.Registration) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, u services.ProfileUpdate) (*models.Profile, error)
}

type EventService interface {
	List(ctx context.Context, userID string) ([]*models.Event, error)
	Create(ctx context.Context, userID string, in services.EventInput) (*models.Event, error)
	Update(ctx context.Context, userID, id string, patch models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, userID, id string) error
}

type AttachmentService interface {
	Upload(ctx context.Context, userID string, in services.Upload) (*models.Attachment, error)
	Delete(ctx context.Context, userID, id string) error
	SignedURL(ctx context.Context, userID, id string, ttl time.Duration) (string, time.Time, error)
}

// Services groups the collaborators the handlers dispatch to.
type Services struct {
	Users       UserService
	Profiles    ProfileService
	Events      EventService
	Attachments AttachmentService
}

type GRPCServer struct {
	api.UnimplementedTimelineServer
	address   string
	svc       Services
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		svc:       svc,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(api.MaxMessageSize),
		grpc.MaxSendMsgSize(api.MaxMessageSize),
	)
	api.RegisterTimelineServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
