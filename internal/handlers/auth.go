package handlers

import (
	"errors"
	"net/http"
	"strings"

	"clinic-api/internal/apperr"
	"clinic-api/internal/auth"
	"clinic-api/internal/models"
	"clinic-api/internal/utils"

	"github.com/gin-gonic/gin"
)

const msgInvalidCredentials = "Invalid email or password."

// --- Structs for Request Binding ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=255"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// --- Responses ---

type RegisterResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

// --- Handler Functions ---

// Register creates an account. It does not log the user in.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if problems := utils.ValidatePassword(req.Password, name, email); len(problems) > 0 {
		h.fail(c, apperr.ValidationField("password", strings.Join(problems, " ")))
		return
	}

	hash, err := utils.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.fail(c, err)
		return
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Message: "User registered successfully.",
	})
}

// Login exchanges credentials for an access and refresh token. An unknown
// email and a wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		utils.CheckPasswordAgainstNothing(req.Password)
		h.fail(c, apperr.Authentication(msgInvalidCredentials))
		return
	case err != nil:
		h.fail(c, err)
		return
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		h.fail(c, apperr.Authentication(msgInvalidCredentials))
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    toUserResponse(user),
	})
}

// Refresh mints a new access token from a valid refresh token.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	userID, err := h.tokens.Verify(req.Refresh, auth.RefreshToken)
	if err != nil {
		h.fail(c, apperr.Authentication("Token is invalid or expired."))
		return
	}
	if _, err := h.store.UserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			h.fail(c, apperr.Authentication("User not found."))
			return
		}
		h.fail(c, err)
		return
	}

	access, err := h.tokens.IssueAccess(userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RefreshResponse{Access: access})
}
