package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/api"
	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// directoryAPI is the subset of *api.UserDirectoryClient used here.
type directoryAPI interface {
	ListUsers(ctx context.Context, in *api.ListUsersRequest, opts ...grpc.CallOption) (*api.ListUsersResponse, error)
	GetUser(ctx context.Context, in *api.GetUserRequest, opts ...grpc.CallOption) (*api.User, error)
	UpdateUser(ctx context.Context, in *api.UpdateUserRequest, opts ...grpc.CallOption) (*api.User, error)
	DeleteUser(ctx context.Context, in *api.DeleteUserRequest, opts ...grpc.CallOption) (*api.DeleteUserResponse, error)
	SearchUsers(ctx context.Context, in *api.SearchUsersRequest, opts ...grpc.CallOption) (*api.ListUsersResponse, error)
	ListUsersWithItems(ctx context.Context, in *api.ListUsersWithItemsRequest, opts ...grpc.CallOption) (*api.ListUsersWithItemsResponse, error)
	Register(ctx context.Context, in *api.RegisterRequest, opts ...grpc.CallOption) (*api.User, error)
	Login(ctx context.Context, in *api.LoginRequest, opts ...grpc.CallOption) (*api.LoginResponse, error)
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      directoryAPI

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

// accessTokenInterceptor attaches the current token, if any, and bounds the
// call with the configured timeout.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for endpointURL. The connection is
// established lazily on the first call. Extra dial options are appended to
// the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewUserDirectoryClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) IsLoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Register(ctx context.Context, username, email string, password []byte) (*api.User, error) {
	req := &api.RegisterRequest{Username: username, Email: email, Password: string(password)}
	u, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return u, nil
}

// Login exchanges credentials for a token and keeps it for later calls.
func (s *GRPCClient) Login(ctx context.Context, username string, password []byte) error {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		return s.mapError(err)
	}
	s.setToken(resp.AccessToken)
	return nil
}

// Logout forgets the token locally. Tokens are stateless, so there is
// nothing to revoke on the server.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]*api.User, error) {
	resp, err := s.client.ListUsers(ctx, &api.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) GetUser(ctx context.Context, id int64) (*api.User, error) {
	u, err := s.client.GetUser(ctx, &api.GetUserRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return u, nil
}

func (s *GRPCClient) SearchUsers(ctx context.Context, term string) ([]*api.User, error) {
	resp, err := s.client.SearchUsers(ctx, &api.SearchUsersRequest{Term: term})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) ListUsersWithItems(ctx context.Context) ([]*api.UserWithItems, error) {
	resp, err := s.client.ListUsersWithItems(ctx, &api.ListUsersWithItemsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) UpdateUser(ctx context.Context, id int64, username, email *string) (*api.User, error) {
	u, err := s.client.UpdateUser(ctx, &api.UpdateUserRequest{ID: id, Username: username, Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return u, nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, id int64) (bool, error) {
	resp, err := s.client.DeleteUser(ctx, &api.DeleteUserRequest{ID: id})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
