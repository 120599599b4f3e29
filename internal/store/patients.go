package store

import (
	"context"
	"fmt"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const msgPatientNotFound = "Patient not found."

var patientReplaceColumns = []string{
	"name", "age", "gender", "contact", "address", "medical_history", "updated_at",
}

// ListPatients returns the owner's patients, newest first.
func (s *Store) ListPatients(ctx context.Context, owner uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return ownedPatients(tx, owner).
			Order("created_at DESC").
			Order("id DESC").
			Find(&patients).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// CreatePatient stores p as owned by owner, whatever p.CreatedByID held.
func (s *Store) CreatePatient(ctx context.Context, owner uint, p *models.Patient) error {
	p.ID = 0
	p.CreatedByID = owner
	return s.inTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return fmt.Errorf("create patient: %w", err)
		}
		return nil
	})
}

// GetPatient returns patient id if owner created it.
func (s *Store) GetPatient(ctx context.Context, owner, id uint) (*models.Patient, error) {
	var p models.Patient
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return findOwnedPatient(tx, owner, id, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ReplacePatient overwrites every client-editable field of an owned patient.
func (s *Store) ReplacePatient(ctx context.Context, owner, id uint, in models.Patient) (*models.Patient, error) {
	var p models.Patient
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		if err := findOwnedPatient(tx, owner, id, &p); err != nil {
			return err
		}
		p.Name = in.Name
		p.Age = in.Age
		p.Gender = in.Gender
		p.Contact = in.Contact
		p.Address = in.Address
		p.MedicalHistory = in.MedicalHistory
		res := tx.Model(&p).
			Where("created_by_id = ?", owner).
			Select(patientReplaceColumns).
			Updates(&p)
		if res.Error != nil {
			return fmt.Errorf("update patient %d: %w", id, res.Error)
		}
		// Deleted since the lookup.
		if res.RowsAffected == 0 {
			return apperr.NotFound(msgPatientNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePatient removes an owned patient together with its mappings.
func (s *Store) DeletePatient(ctx context.Context, owner, id uint) error {
	return s.inTx(ctx, func(tx *gorm.DB) error {
		var p models.Patient
		if err := findOwnedPatient(tx, owner, id, &p); err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", p.ID).Delete(&models.Mapping{}).Error; err != nil {
			return fmt.Errorf("delete mappings of patient %d: %w", p.ID, err)
		}
		if err := tx.Delete(&p).Error; err != nil {
			return fmt.Errorf("delete patient %d: %w", p.ID, err)
		}
		return nil
	})
}

func findOwnedPatient(tx *gorm.DB, owner, id uint, dst *models.Patient) error {
	if err := ownedPatients(tx, owner).First(dst, id).Error; err != nil {
		if isNotFound(err) {
			return apperr.NotFound(msgPatientNotFound)
		}
		return fmt.Errorf("find patient %d: %w", id, err)
	}
	return nil
}
