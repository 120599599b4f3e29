package handlers

import (
	"strings"
	"time"

	"clinic-api/internal/models"
)

// Response records are the wire shape of each entity. They are built from the
// storage models field by field; the models themselves never reach the encoder.

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PatientResponse struct {
	ID             uint      `json:"id"`
	CreatedBy      uint      `json:"created_by"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Contact        string    `json:"contact"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Specialization    string    `json:"specialization"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Hospital          string    `json:"hospital"`
	YearsOfExperience int       `json:"years_of_experience"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MappingResponse is returned by create: references only.
type MappingResponse struct {
	ID         uint      `json:"id"`
	Patient    uint      `json:"patient"`
	Doctor     uint      `json:"doctor"`
	AssignedBy uint      `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

// MappingDetailResponse is the list view with patient and doctor inlined.
type MappingDetailResponse struct {
	ID         uint            `json:"id"`
	Patient    PatientResponse `json:"patient"`
	Doctor     DoctorResponse  `json:"doctor"`
	AssignedBy uint            `json:"assigned_by"`
	AssignedAt time.Time       `json:"assigned_at"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toPatientResponse(p *models.Patient) PatientResponse {
	return PatientResponse{
		ID:             p.ID,
		CreatedBy:      p.CreatedByID,
		Name:           p.Name,
		Age:            p.Age,
		Gender:         p.Gender,
		Contact:        p.Contact,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPatientResponses(ps []models.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toPatientResponse(&ps[i]))
	}
	return out
}

func toDoctorResponse(d *models.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:                d.ID,
		Name:              d.Name,
		Specialization:    d.Specialization,
		Email:             d.Email,
		Phone:             d.Phone,
		Hospital:          d.Hospital,
		YearsOfExperience: d.YearsOfExperience,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toDoctorResponses(ds []models.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(ds))
	for i := range ds {
		out = append(out, toDoctorResponse(&ds[i]))
	}
	return out
}

func toMappingResponse(m *models.Mapping) MappingResponse {
	return MappingResponse{
		ID:         m.ID,
		Patient:    m.PatientID,
		Doctor:     m.DoctorID,
		AssignedBy: m.AssignedByID,
		AssignedAt: m.AssignedAt,
	}
}

func toMappingDetailResponses(ms []models.Mapping) []MappingDetailResponse {
	out := make([]MappingDetailResponse, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		out = append(out, MappingDetailResponse{
			ID:         m.ID,
			Patient:    toPatientResponse(&m.Patient),
			Doctor:     toDoctorResponse(&m.Doctor),
			AssignedBy: m.AssignedByID,
			AssignedAt: m.AssignedAt,
		})
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
