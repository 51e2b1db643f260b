package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/clinic"
	"clinic-desk-server/internal/models"
	"clinic-desk-server/internal/utils"
)

// ClinicService is the part of the service layer the HTTP handlers use.
// *clinic.Service implements it.
type ClinicService interface {
	Authenticate(ctx context.Context, login, password string) (*clinic.AuthenticatedUser, error)

	ListAppointments(ctx context.Context, filter clinic.AppointmentFilter) ([]clinic.AppointmentRow, error)
	PatientAppointments(ctx context.Context, patientID uint) ([]clinic.AppointmentRow, error)
	AppointmentByID(ctx context.Context, id uint) (*clinic.AppointmentRow, error)
	ListAppointmentServices(ctx context.Context, appointmentID uint) ([]clinic.AppointmentServiceRow, error)

	ListPatients(ctx context.Context) ([]models.Patient, error)
	ListDoctors(ctx context.Context, activeOnly bool) ([]models.Doctor, error)
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	CreatePatient(ctx context.Context, name, phone, email string) (uint, error)

	BookAppointment(ctx context.Context, b clinic.Booking) (*clinic.BookingResult, error)
	EditAppointment(ctx context.Context, e clinic.AppointmentEdit) (float64, error)
	SelfBook(ctx context.Context, patientID uint, b clinic.SelfBooking) (*clinic.BookingResult, error)
}

var _ ClinicService = (*clinic.Service)(nil)

// respondError maps service errors onto HTTP statuses. Unclassified errors
// are logged on the gin context and reported as 500.
func respondError(c *gin.Context, what string, err error) {
	switch {
	case errors.Is(err, clinic.ErrNotFound):
		utils.NotFound(c, what+" not found")
	case errors.Is(err, clinic.ErrValidation), errors.Is(err, clinic.ErrConstraint):
		utils.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		utils.InternalServerError(c, "Failed to process "+what)
	}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// activeOnlyParam reads ?activeOnly=, defaulting to true.
func activeOnlyParam(c *gin.Context) (bool, bool) {
	raw := c.Query("activeOnly")
	if raw == "" {
		return true, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		utils.BadRequest(c, "activeOnly must be a boolean")
		return false, false
	}
	return v, true
}
