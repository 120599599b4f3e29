package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"clinic-api/internal/apperr"
	"clinic-api/internal/auth"
	"clinic-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	callerKey       = "caller"
)

// RequestID propagates the client's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one entry per request once the handlers have run.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if u := callerFrom(c); u != nil {
			fields = append(fields, zap.Uint("user_id", u.ID))
		}
		if c.Writer.Status() >= 500 {
			log.Warn("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.fail(c, fmt.Errorf("panic: %v", recovered))
}

// RequireAuth resolves the bearer access token to a user and stores it on the context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			h.fail(c, apperr.Authentication("Authentication credentials were not provided."))
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			h.fail(c, apperr.Authentication("Authorization header must be of the form \"Bearer <token>\"."))
			return
		}

		userID, err := h.tokens.Verify(token, auth.AccessToken)
		if err != nil {
			h.fail(c, apperr.Authentication("Given token not valid for any token type."))
			return
		}
		user, err := h.store.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				h.fail(c, apperr.Authentication("User not found."))
				return
			}
			h.fail(c, err)
			return
		}

		c.Set(callerKey, user)
		c.Next()
	}
}

// callerFrom returns the authenticated user, or nil outside RequireAuth.
func callerFrom(c *gin.Context) *models.User {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
