package grpc

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/api"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.User, error) {
	user, err := s.auth.Register(ctx, services.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "id", user.ID)
	return toAPIUser(user), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	token, err := s.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *api.AuthenticateRequest) (*api.AuthenticateResponse, error) {
	claims, err := s.auth.Authenticate(ctx, req.AccessToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.AuthenticateResponse{
		UserID:    claims.UserID,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAtTime(),
		ExpiresAt: claims.ExpiresAtTime(),
	}, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *api.CreateUserRequest) (*api.User, error) {
	user, err := s.directory.Create(ctx, services.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	if claims, ok := ClaimsFromContext(ctx); ok {
		s.logger.Info(ctx, "User created", "id", user.ID, "by", claims.UserID)
	}
	return toAPIUser(user), nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *api.ListUsersRequest) (*api.ListUsersResponse, error) {
	users, err := s.directory.GetAll(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.ListUsersResponse{Users: toAPIUsers(users)}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *api.GetUserRequest) (*api.User, error) {
	user, err := s.directory.GetByID(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAPIUser(user), nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *api.UpdateUserRequest) (*api.User, error) {
	user, err := s.directory.Update(ctx, req.ID, services.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toAPIUser(user), nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *api.DeleteUserRequest) (*api.DeleteUserResponse, error) {
	ok, err := s.directory.Delete(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.DeleteUserResponse{Deleted: ok}, nil
}

func (s *GRPCServer) SearchUsers(ctx context.Context, req *api.SearchUsersRequest) (*api.ListUsersResponse, error) {
	users, err := s.directory.Search(ctx, req.Term)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.ListUsersResponse{Users: toAPIUsers(users)}, nil
}

func (s *GRPCServer) ListUsersWithItems(ctx context.Context, _ *api.ListUsersWithItemsRequest) (*api.ListUsersWithItemsResponse, error) {
	users, err := s.directory.ListWithItems(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*api.UserWithItems, 0, len(users))
	for _, u := range users {
		items := make([]*api.Item, 0, len(u.Items))
		for _, it := range u.Items {
			items = append(items, &api.Item{ID: it.ID, Title: it.Title, Author: it.Author})
		}
		out = append(out, &api.UserWithItems{ID: u.ID, Username: u.Username, Email: u.Email, Items: items})
	}
	return &api.ListUsersWithItemsResponse{Users: out}, nil
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func toAPIUsers(users []*models.User) []*api.User {
	out := make([]*api.User, 0, len(users))
	for _, u := range users {
		out = append(out, toAPIUser(u))
	}
	return out
}
