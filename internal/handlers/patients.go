package handlers

import (
	"net/http"
	"strings"

	"clinic-api/internal/models"

	"github.com/gin-gonic/gin"
)

const msgPatientNotFound = "Patient not found."

// --- Structs for Request Binding ---

// PatientRequest is the full representation accepted by create and replace.
// Ownership and timestamps are not accepted from the client.
type PatientRequest struct {
	Name           string `json:"name" binding:"required,notblank,max=255"`
	Age            *int   `json:"age" binding:"required,gte=0"`
	Gender         string `json:"gender" binding:"required,notblank,max=20"`
	Contact        string `json:"contact" binding:"required,notblank,max=50"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

func (r PatientRequest) toModel() models.Patient {
	return models.Patient{
		Name:           strings.TrimSpace(r.Name),
		Age:            *r.Age,
		Gender:         strings.TrimSpace(r.Gender),
		Contact:        strings.TrimSpace(r.Contact),
		Address:        r.Address,
		MedicalHistory: r.MedicalHistory,
	}
}

// --- Handler Functions ---

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.store.ListPatients(c.Request.Context(), callerFrom(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponses(patients))
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	p := req.toModel()
	if err := h.store.CreatePatient(c.Request.Context(), callerFrom(c).ID, &p); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPatientResponse(&p))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := parseID(c, "id", msgPatientNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}

	p, err := h.store.GetPatient(c.Request.Context(), callerFrom(c).ID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponse(p))
}

// ReplacePatient requires the full representation; partial updates are not supported.
func (h *Handler) ReplacePatient(c *gin.Context) {
	id, err := parseID(c, "id", msgPatientNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}
	var req PatientRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	p, err := h.store.ReplacePatient(c.Request.Context(), callerFrom(c).ID, id, req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPatientResponse(p))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := parseID(c, "id", msgPatientNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.store.DeletePatient(c.Request.Context(), callerFrom(c).ID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
