package store

import (
	"context"
	"fmt"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"

	"gorm.io/gorm"
)

const msgEmailTaken = "A user with this email already exists."

// CreateUser inserts u. The unique email index decides duplicates.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return s.inTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.ValidationField("email", msgEmailTaken)
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

// UserByEmail returns the account registered under email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return tx.Where("email = ?", email).First(&u).Error
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return tx.First(&u, id).Error
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}
