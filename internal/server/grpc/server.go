// Package grpc exposes the auth and directory services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/shelfkeeper/internal/api"
	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/auth"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AuthService is the part of services.AuthService the transport needs.
type AuthService interface {
	Register(ctx context.Context, in services.UserInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// DirectoryService is the part of services.DirectoryService the transport needs.
type DirectoryService interface {
	Create(ctx context.Context, in services.UserInput) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, in services.UpdateInput) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, term string) ([]*models.User, error)
	ListWithItems(ctx context.Context) ([]*models.UserWithItems, error)
}

// protectedMethods require a valid access token.
var protectedMethods = map[string]struct{}{
	api.MethodCreateUser: {},
	api.MethodUpdateUser: {},
	api.MethodDeleteUser: {},
}

type GRPCServer struct {
	api.UnimplementedUserDirectoryServer
	address   string
	auth      AuthService
	directory DirectoryService
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as AuthService, ds DirectoryService) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
		directory: ds,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully: in-flight calls finish, new ones are refused.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	api.RegisterUserDirectoryServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		cancel()
		<-stopped
		return err
	}

	<-stopped
	return nil
}
