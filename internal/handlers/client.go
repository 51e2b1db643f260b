package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/clinic"
	"clinic-desk-server/internal/metrics"
	"clinic-desk-server/internal/middleware"
	"clinic-desk-server/internal/models"
	"clinic-desk-server/internal/utils"
)

// ClientHandler serves a client's own appointments. The patient always comes
// from the token, never from the request.
type ClientHandler struct {
	Service ClinicService
	Metrics *metrics.ClinicMetrics
}

func NewClientHandler(svc ClinicService, m *metrics.ClinicMetrics) *ClientHandler {
	return &ClientHandler{Service: svc, Metrics: m}
}

// SelfBookRequest represents a client's booking with at most one service.
type SelfBookRequest struct {
	DoctorID  uint   `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required" validate:"isodate"`
	Time      string `json:"time" binding:"required" validate:"clocktime"`
	Type      string `json:"type" binding:"required" validate:"appttype"`
	ServiceID *uint  `json:"serviceId"`
}

func (h *ClientHandler) patientID(c *gin.Context) (uint, bool) {
	id, ok := middleware.GetPatientIDFromContext(c)
	if !ok {
		utils.Forbidden(c, "Account is not linked to a patient")
		return 0, false
	}
	return id, true
}

// GetMyAppointments lists the signed-in client's appointments, newest first.
func (h *ClientHandler) GetMyAppointments(c *gin.Context) {
	patientID, ok := h.patientID(c)
	if !ok {
		return
	}
	rows, err := h.Service.PatientAppointments(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, "appointments", err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", rows)
}

// CreateMyAppointment books an appointment for the signed-in client.
func (h *ClientHandler) CreateMyAppointment(c *gin.Context) {
	patientID, ok := h.patientID(c)
	if !ok {
		return
	}
	var req SelfBookRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	res, err := h.Service.SelfBook(c.Request.Context(), patientID, clinic.SelfBooking{
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      models.AppointmentType(req.Type),
		ServiceID: req.ServiceID,
	})
	h.Metrics.ObserveBooking(metrics.WorkflowSelfBook, err)
	if err != nil {
		respondError(c, "booking", err)
		return
	}
	utils.Created(c, "Appointment booked successfully", res)
}
