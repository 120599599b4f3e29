package store

import (
	"context"
	"fmt"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"

	"gorm.io/gorm"
)

const (
	msgDoctorNotFound   = "Doctor not found."
	msgDoctorEmailTaken = "doctor with this email already exists."
)

var doctorReplaceColumns = []string{
	"name", "specialization", "email", "phone", "hospital", "years_of_experience", "updated_at",
}

// ListDoctors returns the whole directory, newest first.
func (s *Store) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return allDoctors(tx).
			Order("created_at DESC").
			Order("id DESC").
			Find(&doctors).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Store) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	d.ID = 0
	return s.inTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return doctorWriteError(err, "create doctor")
		}
		return nil
	})
}

func (s *Store) GetDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	var d models.Doctor
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		return findDoctor(tx, id, &d)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ReplaceDoctor overwrites every client-editable field of doctor id.
func (s *Store) ReplaceDoctor(ctx context.Context, id uint, in models.Doctor) (*models.Doctor, error) {
	var d models.Doctor
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		if err := findDoctor(tx, id, &d); err != nil {
			return err
		}
		d.Name = in.Name
		d.Specialization = in.Specialization
		d.Email = in.Email
		d.Phone = in.Phone
		d.Hospital = in.Hospital
		d.YearsOfExperience = in.YearsOfExperience
		res := tx.Model(&d).Select(doctorReplaceColumns).Updates(&d)
		if res.Error != nil {
			return doctorWriteError(res.Error, fmt.Sprintf("update doctor %d", id))
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound(msgDoctorNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDoctor removes doctor id and every mapping that references it.
func (s *Store) DeleteDoctor(ctx context.Context, id uint) error {
	return s.inTx(ctx, func(tx *gorm.DB) error {
		var d models.Doctor
		if err := findDoctor(tx, id, &d); err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", d.ID).Delete(&models.Mapping{}).Error; err != nil {
			return fmt.Errorf("delete mappings of doctor %d: %w", d.ID, err)
		}
		if err := tx.Delete(&d).Error; err != nil {
			return fmt.Errorf("delete doctor %d: %w", d.ID, err)
		}
		return nil
	})
}

func findDoctor(tx *gorm.DB, id uint, dst *models.Doctor) error {
	if err := allDoctors(tx).First(dst, id).Error; err != nil {
		if isNotFound(err) {
			return apperr.NotFound(msgDoctorNotFound)
		}
		return fmt.Errorf("find doctor %d: %w", id, err)
	}
	return nil
}

func doctorWriteError(err error, op string) error {
	if isUniqueViolation(err) {
		return apperr.ValidationField("email", msgDoctorEmailTaken)
	}
	return fmt.Errorf("%s: %w", op, err)
}
