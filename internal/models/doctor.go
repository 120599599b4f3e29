package models

import "time"

// Doctor defines the structure for the shared doctor directory.
type Doctor struct {
	ID                uint      `gorm:"primaryKey"`
	Name              string    `gorm:"size:255;not null"`
	Specialization    string    `gorm:"size:255;not null"`
	Email             string    `gorm:"size:254;not null;uniqueIndex"`
	Phone             string    `gorm:"size:50;not null"`
	Hospital          string    `gorm:"size:255;not null"`
	YearsOfExperience int       `gorm:"not null"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}
