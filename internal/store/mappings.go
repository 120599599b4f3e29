package store

import (
	"context"
	"fmt"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	msgMappingNotFound = "Mapping not found."
	msgMappingExists   = "This doctor is already assigned to this patient."
)

func msgNoSuchObject(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

// CreateMapping assigns doctorID to patientID on behalf of caller, who must own the patient.
// Duplicate pairs are rejected by the unique index, not by a prior lookup.
func (s *Store) CreateMapping(ctx context.Context, caller, patientID, doctorID uint) (*models.Mapping, error) {
	var m models.Mapping
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, patientID).Error; err != nil {
			if isNotFound(err) {
				return apperr.ValidationField("patient", msgNoSuchObject(patientID))
			}
			return fmt.Errorf("find patient %d: %w", patientID, err)
		}
		var doctor models.Doctor
		if err := allDoctors(tx).Select("id").First(&doctor, doctorID).Error; err != nil {
			if isNotFound(err) {
				return apperr.ValidationField("doctor", msgNoSuchObject(doctorID))
			}
			return fmt.Errorf("find doctor %d: %w", doctorID, err)
		}
		if err := authorizeAssignment(&patient, caller); err != nil {
			return err
		}

		m = models.Mapping{
			PatientID:    patient.ID,
			DoctorID:     doctor.ID,
			AssignedByID: caller,
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			switch {
			case isUniqueViolation(err):
				return apperr.Conflict(msgMappingExists)
			case isForeignKeyViolation(err):
				// The patient or doctor was deleted between lookup and insert.
				return apperr.ValidationField("patient", msgNoSuchObject(patientID))
			}
			return fmt.Errorf("create mapping: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMappings returns the caller's mappings with patient and doctor loaded.
func (s *Store) ListMappings(ctx context.Context, caller uint) ([]models.Mapping, error) {
	var mappings []models.Mapping
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return expanded(ownedMappings(tx, caller)).Find(&mappings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	return mappings, nil
}

// MappingsForPatient returns the mappings of one owned patient.
func (s *Store) MappingsForPatient(ctx context.Context, caller, patientID uint) ([]models.Mapping, error) {
	var mappings []models.Mapping
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		var p models.Patient
		if err := findOwnedPatient(tx, caller, patientID, &p); err != nil {
			return err
		}
		return expanded(tx.Model(&models.Mapping{}).Where("patient_id = ?", p.ID)).Find(&mappings).Error
	})
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// DeleteMapping removes mapping id if its patient belongs to caller.
func (s *Store) DeleteMapping(ctx context.Context, caller, id uint) error {
	return s.inTx(ctx, func(tx *gorm.DB) error {
		res := ownedMappings(tx, caller).Where("id = ?", id).Delete(&models.Mapping{})
		if res.Error != nil {
			return fmt.Errorf("delete mapping %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound(msgMappingNotFound)
		}
		return nil
	})
}

func expanded(q *gorm.DB) *gorm.DB {
	return q.Preload("Patient").Preload("Doctor").
		Order("assigned_at DESC").
		Order("id DESC")
}
