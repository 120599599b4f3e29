package handlers

import (
	"net/http"
	"strings"

	"clinic-api/internal/models"

	"github.com/gin-gonic/gin"
)

const msgDoctorNotFound = "Doctor not found."

// --- Structs for Request Binding ---

type DoctorRequest struct {
	Name              string `json:"name" binding:"required,notblank,max=255"`
	Specialization    string `json:"specialization" binding:"required,notblank,max=255"`
	Email             string `json:"email" binding:"required,email,max=254"`
	Phone             string `json:"phone" binding:"required,notblank,max=50"`
	Hospital          string `json:"hospital" binding:"max=255"`
	YearsOfExperience *int   `json:"years_of_experience" binding:"omitempty,gte=0"`
}

func (r DoctorRequest) toModel() models.Doctor {
	d := models.Doctor{
		Name:           strings.TrimSpace(r.Name),
		Specialization: strings.TrimSpace(r.Specialization),
		Email:          normalizeEmail(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		Hospital:       strings.TrimSpace(r.Hospital),
	}
	if r.YearsOfExperience != nil {
		d.YearsOfExperience = *r.YearsOfExperience
	}
	return d
}

// --- Handler Functions ---

// The doctor directory is shared: any authenticated user may read or change any entry.

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.store.ListDoctors(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDoctorResponses(doctors))
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	d := req.toModel()
	if err := h.store.CreateDoctor(c.Request.Context(), &d); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDoctorResponse(&d))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := parseID(c, "id", msgDoctorNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}

	d, err := h.store.GetDoctor(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDoctorResponse(d))
}

func (h *Handler) ReplaceDoctor(c *gin.Context) {
	id, err := parseID(c, "id", msgDoctorNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}
	var req DoctorRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	d, err := h.store.ReplaceDoctor(c.Request.Context(), id, req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDoctorResponse(d))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := parseID(c, "id", msgDoctorNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.store.DeleteDoctor(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
