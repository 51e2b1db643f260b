package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/utils"
)

// DirectoryHandler serves patients, doctors and the price list.
type DirectoryHandler struct {
	Service ClinicService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc ClinicService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// GetPatients handles fetching all patients (admin).
func (h *DirectoryHandler) GetPatients(c *gin.Context) {
	patients, err := h.Service.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, "patients", err)
		return
	}
	utils.Success(c, "Patients fetched successfully", patients)
}

// CreatePatient handles registering a patient without an appointment (admin).
func (h *DirectoryHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		utils.BadRequest(c, "fullName must not be blank")
		return
	}

	id, err := h.Service.CreatePatient(c.Request.Context(), name, strings.TrimSpace(req.Phone), strings.TrimSpace(req.Email))
	if err != nil {
		respondError(c, "patient", err)
		return
	}
	utils.Created(c, "Patient registered successfully", gin.H{"id": id})
}

// GetDoctors handles fetching doctors; active ones unless ?activeOnly=false.
func (h *DirectoryHandler) GetDoctors(c *gin.Context) {
	activeOnly, ok := activeOnlyParam(c)
	if !ok {
		return
	}
	doctors, err := h.Service.ListDoctors(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, "doctors", err)
		return
	}
	utils.Success(c, "Doctors fetched successfully", doctors)
}

// GetServices handles fetching the price list; active entries unless ?activeOnly=false.
func (h *DirectoryHandler) GetServices(c *gin.Context) {
	activeOnly, ok := activeOnlyParam(c)
	if !ok {
		return
	}
	services, err := h.Service.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, "services", err)
		return
	}
	utils.Success(c, "Services fetched successfully", services)
}
