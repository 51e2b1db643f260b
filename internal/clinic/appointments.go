package clinic

import (
	"context"

	"gorm.io/gorm"

	"clinic-desk-server/internal/models"
)

// AppointmentFilter narrows ListAppointments. Empty fields do not filter;
// Status "All" does not filter either. Dates are inclusive YYYY-MM-DD bounds.
type AppointmentFilter struct {
	Status   string
	DateFrom string
	DateTo   string
}

// AppointmentRow is an appointment joined with patient and doctor details.
type AppointmentRow struct {
	ID              uint                     `json:"id"`
	PatientID       uint                     `json:"patientId"`
	DoctorID        uint                     `json:"doctorId"`
	AppointmentDate string                   `json:"appointmentDate"`
	AppointmentTime string                   `json:"appointmentTime"`
	AppointmentType models.AppointmentType   `json:"appointmentType"`
	Status          models.AppointmentStatus `json:"status"`
	Price           float64                  `json:"price"`
	Notes           string                   `json:"notes"`
	PatientName     string                   `json:"patientName"`
	PatientPhone    string                   `json:"patientPhone"`
	DoctorName      string                   `json:"doctorName"`
	Specialization  string                   `json:"specialization"`
}

// NewAppointment holds the caller-supplied fields of a booking. Price must
// already be the total of the selected services.
type NewAppointment struct {
	PatientID uint
	DoctorID  uint
	Date      string
	Time      string
	Type      models.AppointmentType
	Notes     string
	Price     float64
}

const appointmentColumns = `a.id, a.patient_id, a.doctor_id, a.appointment_date, a.appointment_time,
	a.appointment_type, a.status, a.price, a.notes,
	p.full_name AS patient_name, p.phone AS patient_phone,
	d.full_name AS doctor_name, d.specialization`

func (s *Service) appointmentQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("appointments AS a").
		Select(appointmentColumns).
		Joins("JOIN patients AS p ON a.patient_id = p.id").
		Joins("JOIN doctors AS d ON a.doctor_id = d.id")
}

func newestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("a.appointment_date DESC").Order("a.appointment_time DESC")
}

// ListAppointments returns appointments matching every given filter, newest
// date and time first.
func (s *Service) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]AppointmentRow, error) {
	q := s.appointmentQuery(ctx)
	if filter.Status != "" && filter.Status != StatusAll {
		q = q.Where("a.status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("a.appointment_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("a.appointment_date <= ?", filter.DateTo)
	}

	rows := make([]AppointmentRow, 0)
	if err := newestFirst(q).Scan(&rows).Error; err != nil {
		return nil, storeError("list appointments", err)
	}
	return rows, nil
}

// PatientAppointments returns one patient's appointments, newest first.
func (s *Service) PatientAppointments(ctx context.Context, patientID uint) ([]AppointmentRow, error) {
	rows := make([]AppointmentRow, 0)
	q := s.appointmentQuery(ctx).Where("a.patient_id = ?", patientID)
	if err := newestFirst(q).Scan(&rows).Error; err != nil {
		return nil, storeError("patient appointments", err)
	}
	return rows, nil
}

// AppointmentByID returns one appointment with patient and doctor details.
func (s *Service) AppointmentByID(ctx context.Context, id uint) (*AppointmentRow, error) {
	var rows []AppointmentRow
	if err := s.appointmentQuery(ctx).Where("a.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, storeError("get appointment", err)
	}
	if len(rows) == 0 {
		return nil, storeError("get appointment", gorm.ErrRecordNotFound)
	}
	return &rows[0], nil
}

// CreateAppointment inserts an appointment in status Scheduled and returns its id.
func (s *Service) CreateAppointment(ctx context.Context, in NewAppointment) (uint, error) {
	appointment := models.Appointment{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		AppointmentType: in.Type,
		Status:          models.StatusScheduled,
		Price:           in.Price,
		Notes:           in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&appointment).Error; err != nil {
		return 0, storeError("create appointment", err)
	}

	s.logger.Info().
		Uint("appointment_id", appointment.ID).
		Uint("patient_id", in.PatientID).
		Uint("doctor_id", in.DoctorID).
		Str("date", in.Date).
		Msg("appointment created")
	return appointment.ID, nil
}

// UpdateAppointment overwrites doctor, status, notes and price. Patient, date
// and time are left as booked. Any status may replace any other.
func (s *Service) UpdateAppointment(ctx context.Context, id, doctorID uint, status models.AppointmentStatus, notes string, price float64) error {
	res := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"doctor_id":  doctorID,
			"status":     status,
			"notes":      notes,
			"price":      price,
			"updated_at": s.now(),
		})
	if res.Error != nil {
		return storeError("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return storeError("update appointment", gorm.ErrRecordNotFound)
	}

	s.logger.Info().
		Uint("appointment_id", id).
		Uint("doctor_id", doctorID).
		Str("status", string(status)).
		Msg("appointment updated")
	return nil
}
