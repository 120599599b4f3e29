package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgMappingNotFound = "Mapping not found."

// --- Structs for Request Binding ---

type MappingRequest struct {
	Patient uint `json:"patient" binding:"required"`
	Doctor  uint `json:"doctor" binding:"required"`
}

// --- Handler Functions ---

func (h *Handler) CreateMapping(c *gin.Context) {
	var req MappingRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	m, err := h.store.CreateMapping(c.Request.Context(), callerFrom(c).ID, req.Patient, req.Doctor)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMappingResponse(m))
}

// ListMappings returns every mapping of the caller's patients, expanded.
func (h *Handler) ListMappings(c *gin.Context) {
	mappings, err := h.store.ListMappings(c.Request.Context(), callerFrom(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMappingDetailResponses(mappings))
}

// GetMappingsForPatient serves GET /mappings/:id where id is a patient id.
func (h *Handler) GetMappingsForPatient(c *gin.Context) {
	patientID, err := parseID(c, "id", msgPatientNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}

	mappings, err := h.store.MappingsForPatient(c.Request.Context(), callerFrom(c).ID, patientID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMappingDetailResponses(mappings))
}

// DeleteMapping serves DELETE /mappings/:id where id is a mapping id.
func (h *Handler) DeleteMapping(c *gin.Context) {
	id, err := parseID(c, "id", msgMappingNotFound)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.store.DeleteMapping(c.Request.Context(), callerFrom(c).ID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
