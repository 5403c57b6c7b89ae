package dto

import "github.com/newskeeper/newskeeper_backend/internal/core/domain"

// UserResponse is the redacted account shape exposed to clients. The
// password hash and provider user id never leave the service.
type UserResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	AuthProvider string `json:"authProvider,omitempty"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.UserID,
		Username:     user.Username,
		AuthProvider: string(user.AuthProvider),
	}
}

// ListUsersResponse wraps the redacted account list.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
