package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment. No transition
// rules are enforced between values.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "Scheduled"
	StatusInProgress AppointmentStatus = "In-progress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusNoShow     AppointmentStatus = "No-show"
	StatusCancelled  AppointmentStatus = "Cancelled"
)

// AppointmentStatuses lists every status in display order.
var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusNoShow,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// AppointmentType represents the kind of visit.
type AppointmentType string

const (
	TypeInitial    AppointmentType = "Initial"
	TypeFollowUp   AppointmentType = "Follow-up"
	TypePreventive AppointmentType = "Preventive"
)

// Valid reports whether t is one of the known appointment types.
func (t AppointmentType) Valid() bool {
	switch t {
	case TypeInitial, TypeFollowUp, TypePreventive:
		return true
	}
	return false
}

// Appointment is a booked visit of one patient to one doctor. Price is a
// cached total of the attached services at the time they were last set.
type Appointment struct {
	BaseModel
	PatientID       uint              `gorm:"not null;index" json:"patientId"`
	DoctorID        uint              `gorm:"not null;index" json:"doctorId"`
	AppointmentDate string            `gorm:"size:10;index" json:"appointmentDate"`
	AppointmentTime string            `gorm:"size:8" json:"appointmentTime"`
	AppointmentType AppointmentType   `gorm:"size:20;check:appointment_type IN ('Initial', 'Follow-up', 'Preventive')" json:"appointmentType"`
	Status          AppointmentStatus `gorm:"size:20;check:status IN ('Scheduled', 'In-progress', 'Completed', 'No-show', 'Cancelled')" json:"status"`
	Price           float64           `json:"price"`
	Notes           string            `gorm:"type:text" json:"notes"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
}

// AppointmentService attaches a price-list entry to an appointment at the
// price captured when it was attached.
type AppointmentService struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uint      `gorm:"not null;index" json:"appointmentId"`
	ServiceID     uint      `gorm:"not null" json:"serviceId"`
	Quantity      int       `gorm:"default:1" json:"quantity"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`

	// Relations
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
	Service     *Service     `gorm:"foreignKey:ServiceID" json:"-"`
}
