package store

import (
	"clinic-api/internal/apperr"
	"clinic-api/internal/models"

	"gorm.io/gorm"
)

const msgAssignOwnPatientsOnly = "You can assign doctors only to your own patients."

// ownedPatients narrows the patient table to rows created by owner. Patient
// lookups start from this scope, so another user's id looks exactly like a
// missing one.
func ownedPatients(tx *gorm.DB, owner uint) *gorm.DB {
	return tx.Model(&models.Patient{}).Where("created_by_id = ?", owner)
}

func ownedPatientIDs(tx *gorm.DB, owner uint) *gorm.DB {
	return tx.Model(&models.Patient{}).Select("id").Where("created_by_id = ?", owner)
}

// ownedMappings narrows mappings to those whose patient belongs to owner.
// Doctors play no part: the directory is shared.
func ownedMappings(tx *gorm.DB, owner uint) *gorm.DB {
	return tx.Model(&models.Mapping{}).Where("patient_id IN (?)", ownedPatientIDs(tx, owner))
}

// allDoctors is the unscoped doctor directory.
func allDoctors(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Doctor{})
}

// authorizeAssignment is the one check that reports a forbidden action instead
// of hiding it: creating a mapping for someone else's patient.
func authorizeAssignment(patient *models.Patient, caller uint) error {
	if patient.CreatedByID != caller {
		return apperr.Authorization(msgAssignOwnPatientsOnly)
	}
	return nil
}
