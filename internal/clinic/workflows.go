package clinic

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"clinic-desk-server/internal/models"
)

// PatientDetails describes a patient registered during booking.
type PatientDetails struct {
	Name  string
	Phone string
	Email string
}

// Booking is an administrator's new appointment. When PatientID is nil a
// patient is registered from NewPatient first.
type Booking struct {
	PatientID  *uint
	NewPatient PatientDetails
	DoctorID   uint
	Date       string
	Time       string
	Type       models.AppointmentType
	Notes      string
	ServiceIDs []uint
}

// BookingResult identifies what a booking created.
type BookingResult struct {
	AppointmentID uint    `json:"appointmentId"`
	PatientID     uint    `json:"patientId"`
	Total         float64 `json:"total"`
}

// AppointmentEdit is an administrator's change to a booked appointment.
type AppointmentEdit struct {
	ID         uint
	DoctorID   uint
	Status     models.AppointmentStatus
	Notes      string
	ServiceIDs []uint
}

// SelfBooking is a client's own booking with at most one service.
type SelfBooking struct {
	DoctorID  uint
	Date      string
	Time      string
	Type      models.AppointmentType
	ServiceID *uint
}

// BookAppointment registers the patient if needed, creates the appointment
// priced at the total of the selection and attaches each selected service at
// its self-pay price. All of it commits or none of it does.
func (s *Service) BookAppointment(ctx context.Context, b Booking) (*BookingResult, error) {
	if b.PatientID == nil && strings.TrimSpace(b.NewPatient.Name) == "" {
		return nil, fmt.Errorf("clinic: book appointment: patient name is required: %w", ErrValidation)
	}

	var result BookingResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txs := s.withTx(tx)

		services, err := txs.ServicesByIDs(ctx, b.ServiceIDs)
		if err != nil {
			return err
		}

		if b.PatientID != nil {
			result.PatientID = *b.PatientID
		} else {
			p := b.NewPatient
			result.PatientID, err = txs.CreatePatient(ctx, strings.TrimSpace(p.Name), strings.TrimSpace(p.Phone), strings.TrimSpace(p.Email))
			if err != nil {
				return err
			}
		}

		result.Total = ComputeTotal(services)
		result.AppointmentID, err = txs.CreateAppointment(ctx, NewAppointment{
			PatientID: result.PatientID,
			DoctorID:  b.DoctorID,
			Date:      b.Date,
			Time:      b.Time,
			Type:      b.Type,
			Notes:     b.Notes,
			Price:     result.Total,
		})
		if err != nil {
			return err
		}
		return txs.attachAll(ctx, result.AppointmentID, services)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// EditAppointment updates the appointment with the total of the new selection
// and replaces its services: every attached row is cleared, then the
// selection is attached again at current self-pay prices.
func (s *Service) EditAppointment(ctx context.Context, e AppointmentEdit) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txs := s.withTx(tx)

		services, err := txs.ServicesByIDs(ctx, e.ServiceIDs)
		if err != nil {
			return err
		}
		total = ComputeTotal(services)

		if err := txs.UpdateAppointment(ctx, e.ID, e.DoctorID, e.Status, e.Notes, total); err != nil {
			return err
		}
		if err := txs.ClearAppointmentServices(ctx, e.ID); err != nil {
			return err
		}
		return txs.attachAll(ctx, e.ID, services)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SelfBook books an appointment for the patient linked to a client account.
// The price is the chosen service's self-pay price, or zero without one.
func (s *Service) SelfBook(ctx context.Context, patientID uint, b SelfBooking) (*BookingResult, error) {
	if patientID == 0 {
		return nil, fmt.Errorf("clinic: self book: account is not linked to a patient: %w", ErrValidation)
	}

	var ids []uint
	if b.ServiceID != nil {
		ids = []uint{*b.ServiceID}
	}
	return s.BookAppointment(ctx, Booking{
		PatientID:  &patientID,
		DoctorID:   b.DoctorID,
		Date:       b.Date,
		Time:       b.Time,
		Type:       b.Type,
		ServiceIDs: ids,
	})
}

func (s *Service) attachAll(ctx context.Context, appointmentID uint, services []models.Service) error {
	for _, svc := range services {
		if err := s.AttachService(ctx, appointmentID, svc.ID, svc.PricePaid, 1); err != nil {
			return err
		}
	}
	return nil
}
