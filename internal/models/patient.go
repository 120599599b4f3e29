package models

import "time"

// Patient defines the structure for patient records.
// Every patient belongs to exactly one user (CreatedByID); other users never see it.
type Patient struct {
	ID             uint      `gorm:"primaryKey"`
	CreatedByID    uint      `gorm:"not null;index"`
	CreatedBy      User      `gorm:"constraint:OnDelete:CASCADE"`
	Name           string    `gorm:"size:255;not null"`
	Age            int       `gorm:"not null"`
	Gender         string    `gorm:"size:20;not null"`
	Contact        string    `gorm:"size:50;not null"`
	Address        string    `gorm:"type:text;not null"`
	MedicalHistory string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}
