package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "shelfkeeper.v1.UserDirectory"

// Full method names, as seen by interceptors.
const (
	MethodCreateUser         = "/" + ServiceName + "/CreateUser"
	MethodListUsers          = "/" + ServiceName + "/ListUsers"
	MethodGetUser            = "/" + ServiceName + "/GetUser"
	MethodUpdateUser         = "/" + ServiceName + "/UpdateUser"
	MethodDeleteUser         = "/" + ServiceName + "/DeleteUser"
	MethodSearchUsers        = "/" + ServiceName + "/SearchUsers"
	MethodListUsersWithItems = "/" + ServiceName + "/ListUsersWithItems"
	MethodRegister           = "/" + ServiceName + "/Register"
	MethodLogin              = "/" + ServiceName + "/Login"
	MethodAuthenticate       = "/" + ServiceName + "/Authenticate"
)

// UserDirectoryServer is implemented by the gRPC server.
type UserDirectoryServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*User, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	GetUser(context.Context, *GetUserRequest) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
	SearchUsers(context.Context, *SearchUsersRequest) (*ListUsersResponse, error)
	ListUsersWithItems(context.Context, *ListUsersWithItemsRequest) (*ListUsersWithItemsResponse, error)
	Register(context.Context, *RegisterRequest) (*User, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*AuthenticateResponse, error)
}

// UnimplementedUserDirectoryServer answers every method with codes.Unimplemented.
// Embed it to stay compatible when methods are added.
type UnimplementedUserDirectoryServer struct{}

func unimplemented(name string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", name)
}

func (UnimplementedUserDirectoryServer) CreateUser(context.Context, *CreateUserRequest) (*User, error) {
	return nil, unimplemented("CreateUser")
}
func (UnimplementedUserDirectoryServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListUsers")
}
func (UnimplementedUserDirectoryServer) GetUser(context.Context, *GetUserRequest) (*User, error) {
	return nil, unimplemented("GetUser")
}
func (UnimplementedUserDirectoryServer) UpdateUser(context.Context, *UpdateUserRequest) (*User, error) {
	return nil, unimplemented("UpdateUser")
}
func (UnimplementedUserDirectoryServer) DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error) {
	return nil, unimplemented("DeleteUser")
}
func (UnimplementedUserDirectoryServer) SearchUsers(context.Context, *SearchUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("SearchUsers")
}
func (UnimplementedUserDirectoryServer) ListUsersWithItems(context.Context, *ListUsersWithItemsRequest) (*ListUsersWithItemsResponse, error) {
	return nil, unimplemented("ListUsersWithItems")
}
func (UnimplementedUserDirectoryServer) Register(context.Context, *RegisterRequest) (*User, error) {
	return nil, unimplemented("Register")
}
func (UnimplementedUserDirectoryServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedUserDirectoryServer) Authenticate(context.Context, *AuthenticateRequest) (*AuthenticateResponse, error) {
	return nil, unimplemented("Authenticate")
}

// unaryMethod adapts a typed server method to grpc.MethodDesc, running the
// configured interceptor chain around it.
func unaryMethod[Req, Resp any](name string, call func(UserDirectoryServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(UserDirectoryServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			})
		},
	}
}

// UserDirectoryServiceDesc describes the service for grpc.Server.RegisterService.
var UserDirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateUser", UserDirectoryServer.CreateUser),
		unaryMethod("ListUsers", UserDirectoryServer.ListUsers),
		unaryMethod("GetUser", UserDirectoryServer.GetUser),
		unaryMethod("UpdateUser", UserDirectoryServer.UpdateUser),
		unaryMethod("DeleteUser", UserDirectoryServer.DeleteUser),
		unaryMethod("SearchUsers", UserDirectoryServer.SearchUsers),
		unaryMethod("ListUsersWithItems", UserDirectoryServer.ListUsersWithItems),
		unaryMethod("Register", UserDirectoryServer.Register),
		unaryMethod("Login", UserDirectoryServer.Login),
		unaryMethod("Authenticate", UserDirectoryServer.Authenticate),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shelfkeeper/v1/directory",
}

func RegisterUserDirectoryServer(s grpc.ServiceRegistrar, srv UserDirectoryServer) {
	s.RegisterService(&UserDirectoryServiceDesc, srv)
}

// UserDirectoryClient is a typed client for the UserDirectory service.
type UserDirectoryClient struct {
	cc grpc.ClientConnInterface
}

func NewUserDirectoryClient(cc grpc.ClientConnInterface) *UserDirectoryClient {
	return &UserDirectoryClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UserDirectoryClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodCreateUser, in, opts)
}

func (c *UserDirectoryClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, MethodListUsers, in, opts)
}

func (c *UserDirectoryClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodGetUser, in, opts)
}

func (c *UserDirectoryClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodUpdateUser, in, opts)
}

func (c *UserDirectoryClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	return invoke[DeleteUserResponse](ctx, c.cc, MethodDeleteUser, in, opts)
}

func (c *UserDirectoryClient) SearchUsers(ctx context.Context, in *SearchUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, MethodSearchUsers, in, opts)
}

func (c *UserDirectoryClient) ListUsersWithItems(ctx context.Context, in *ListUsersWithItemsRequest, opts ...grpc.CallOption) (*ListUsersWithItemsResponse, error) {
	return invoke[ListUsersWithItemsResponse](ctx, c.cc, MethodListUsersWithItems, in, opts)
}

func (c *UserDirectoryClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodRegister, in, opts)
}

func (c *UserDirectoryClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *UserDirectoryClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AuthenticateResponse, error) {
	return invoke[AuthenticateResponse](ctx, c.cc, MethodAuthenticate, in, opts)
}
