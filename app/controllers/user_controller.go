package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"user-registry/app/dto"
	"user-registry/app/services"
	"user-registry/global"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := dto.DecodeCreateUser(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := c.Users.CreateUser(r.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrDuplicateUsername) {
		writeError(w, http.StatusBadRequest, "Username already registered")
		return
	}
	if err != nil {
		global.Logger.Error().Err(err).Msg("create user")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListUsers(r.Context())
	if err != nil {
		global.Logger.Error().Err(err).Msg("list users")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserListResponse(users))
}

func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("user_id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	u, err := c.Users.DeleteUser(r.Context(), uint(id))
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		global.Logger.Error().Err(err).Msg("delete user")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}
