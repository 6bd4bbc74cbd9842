package dto

import (
	"encoding/json"
	"errors"
	"io"

	"user-registry/app/models"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeCreateUser parses and validates a create-user body. Unknown fields
// and empty username or password are rejected before any storage access.
func DecodeCreateUser(r io.Reader) (*CreateUserRequest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var req CreateUserRequest
	if err := dec.Decode(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return nil, errors.New("username and password are required")
	}
	return &req, nil
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

// NewUserListResponse always returns a non-nil slice so an empty table
// serializes as [] rather than null.
func NewUserListResponse(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
