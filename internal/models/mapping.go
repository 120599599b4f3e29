package models

import "time"

// Mapping assigns one patient to one doctor. The (PatientID, DoctorID) pair is unique.
type Mapping struct {
	ID           uint      `gorm:"primaryKey"`
	PatientID    uint      `gorm:"not null;uniqueIndex:idx_mapping_patient_doctor,priority:1"`
	Patient      Patient   `gorm:"constraint:OnDelete:CASCADE"`
	DoctorID     uint      `gorm:"not null;uniqueIndex:idx_mapping_patient_doctor,priority:2;index"`
	Doctor       Doctor    `gorm:"constraint:OnDelete:CASCADE"`
	AssignedByID uint      `gorm:"not null;index"`
	AssignedBy   User      `gorm:"constraint:OnDelete:CASCADE"`
	AssignedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default "mappings".
func (Mapping) TableName() string {
	return "patient_doctor_mappings"
}

// All lists every model in migration order.
func All() []any {
	return []any{&User{}, &Patient{}, &Doctor{}, &Mapping{}}
}
