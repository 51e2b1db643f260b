package clinic

import (
	"context"

	"clinic-desk-server/internal/models"
)

// AppointmentServiceRow is an attached service with its price-list name.
type AppointmentServiceRow struct {
	ID              uint    `json:"id"`
	AppointmentID   uint    `json:"appointmentId"`
	ServiceID       uint    `json:"serviceId"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	ServiceName     string  `json:"serviceName"`
	ServiceCategory string  `json:"serviceCategory"`
}

// AttachService records a service on an appointment at the given captured
// price. The price list is not consulted. Quantities below one are stored as one.
func (s *Service) AttachService(ctx context.Context, appointmentID, serviceID uint, price float64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	row := models.AppointmentService{
		AppointmentID: appointmentID,
		ServiceID:     serviceID,
		Price:         price,
		Quantity:      quantity,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return storeError("attach service", err)
	}
	return nil
}

// ListAppointmentServices returns the services attached to an appointment.
func (s *Service) ListAppointmentServices(ctx context.Context, appointmentID uint) ([]AppointmentServiceRow, error) {
	rows := make([]AppointmentServiceRow, 0)
	err := s.db.WithContext(ctx).
		Table("appointment_services AS aps").
		Select("aps.id, aps.appointment_id, aps.service_id, aps.quantity, aps.price, sp.service_name, sp.service_category").
		Joins("JOIN service_pricelist AS sp ON aps.service_id = sp.id").
		Where("aps.appointment_id = ?", appointmentID).
		Order("aps.id").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError("list appointment services", err)
	}
	return rows, nil
}

// ClearAppointmentServices removes every service attached to an appointment.
func (s *Service) ClearAppointmentServices(ctx context.Context, appointmentID uint) error {
	err := s.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.AppointmentService{}).Error
	if err != nil {
		return storeError("clear appointment services", err)
	}
	return nil
}
