package api

import "time"

// User is the public view of an account. Password material never appears here.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Item struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type UserWithItems struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Items    []*Item `json:"items"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

type GetUserRequest struct {
	ID int64 `json:"id"`
}

// UpdateUserRequest changes only the fields that are set.
type UpdateUserRequest struct {
	ID       int64   `json:"id"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

type DeleteUserRequest struct {
	ID int64 `json:"id"`
}

type DeleteUserResponse struct {
	Deleted bool `json:"deleted"`
}

type SearchUsersRequest struct {
	Term string `json:"term"`
}

type ListUsersWithItemsRequest struct{}

type ListUsersWithItemsResponse struct {
	Users []*UserWithItems `json:"users"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type AuthenticateRequest struct {
	AccessToken string `json:"access_token"`
}

type AuthenticateResponse struct {
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
