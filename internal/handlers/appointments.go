package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/clinic"
	"clinic-desk-server/internal/metrics"
	"clinic-desk-server/internal/models"
	"clinic-desk-server/internal/utils"
)

// AppointmentHandler handles the administrator's appointment requests.
type AppointmentHandler struct {
	Service ClinicService
	Metrics *metrics.ClinicMetrics
}

// NewAppointmentHandler creates a new AppointmentHandler. m may be nil.
func NewAppointmentHandler(svc ClinicService, m *metrics.ClinicMetrics) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Metrics: m}
}

// AppointmentListQuery holds the filters of the appointment list.
type AppointmentListQuery struct {
	Status   string `form:"status"`
	DateFrom string `form:"dateFrom" validate:"isodate"`
	DateTo   string `form:"dateTo" validate:"isodate"`
}

// BookAppointmentRequest represents the request body for booking an
// appointment. Either patientId or patientName must be given.
type BookAppointmentRequest struct {
	PatientID    *uint  `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone"`
	PatientEmail string `json:"patientEmail" validate:"omitempty,email"`
	DoctorID     uint   `json:"doctorId" binding:"required"`
	Date         string `json:"date" binding:"required" validate:"isodate"`
	Time         string `json:"time" binding:"required" validate:"clocktime"`
	Type         string `json:"type" binding:"required" validate:"appttype"`
	Notes        string `json:"notes"`
	ServiceIDs   []uint `json:"serviceIds"`
}

// EditAppointmentRequest represents the request body for editing an appointment.
type EditAppointmentRequest struct {
	DoctorID   uint   `json:"doctorId" binding:"required"`
	Status     string `json:"status" binding:"required" validate:"apptstatus"`
	Notes      string `json:"notes"`
	ServiceIDs []uint `json:"serviceIds"`
}

// GetAppointments handles the filtered appointment list.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var q AppointmentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	if err := utils.Validate(q); err != nil {
		utils.BadRequest(c, "Validation failed: "+utils.FormatValidationError(err))
		return
	}
	if q.Status != "" && q.Status != clinic.StatusAll && !models.AppointmentStatus(q.Status).Valid() {
		utils.BadRequest(c, "Unknown status: "+q.Status)
		return
	}

	rows, err := h.Service.ListAppointments(c.Request.Context(), clinic.AppointmentFilter{
		Status:   q.Status,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
	})
	if err != nil {
		respondError(c, "appointments", err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", rows)
}

// GetAppointmentByID handles fetching one appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	row, err := h.Service.AppointmentByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "appointment", err)
		return
	}
	utils.Success(c, "Appointment fetched successfully", row)
}

// GetAppointmentServices handles listing the services attached to an appointment.
func (h *AppointmentHandler) GetAppointmentServices(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.Service.AppointmentByID(c.Request.Context(), id); err != nil {
		respondError(c, "appointment", err)
		return
	}
	rows, err := h.Service.ListAppointmentServices(c.Request.Context(), id)
	if err != nil {
		respondError(c, "appointment services", err)
		return
	}
	utils.Success(c, "Appointment services fetched successfully", rows)
}

// CreateAppointment books an appointment, registering the patient first
// when no patientId is given.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.PatientID == nil && strings.TrimSpace(req.PatientName) == "" {
		utils.BadRequest(c, "Either patientId or patientName is required")
		return
	}

	res, err := h.Service.BookAppointment(c.Request.Context(), clinic.Booking{
		PatientID: req.PatientID,
		NewPatient: clinic.PatientDetails{
			Name:  req.PatientName,
			Phone: req.PatientPhone,
			Email: req.PatientEmail,
		},
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		Time:       req.Time,
		Type:       models.AppointmentType(req.Type),
		Notes:      req.Notes,
		ServiceIDs: req.ServiceIDs,
	})
	h.Metrics.ObserveBooking(metrics.WorkflowAdminBook, err)
	if err != nil {
		respondError(c, "booking", err)
		return
	}
	utils.Created(c, "Appointment booked successfully", res)
}

// UpdateAppointment edits doctor, status and notes and replaces the
// attached services. The price is recomputed from the new selection.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req EditAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	total, err := h.Service.EditAppointment(c.Request.Context(), clinic.AppointmentEdit{
		ID:         id,
		DoctorID:   req.DoctorID,
		Status:     models.AppointmentStatus(req.Status),
		Notes:      req.Notes,
		ServiceIDs: req.ServiceIDs,
	})
	h.Metrics.ObserveBooking(metrics.WorkflowAdminEdit, err)
	if err != nil {
		respondError(c, "appointment", err)
		return
	}
	utils.Success(c, "Appointment updated successfully", gin.H{"id": id, "total": total})
}
