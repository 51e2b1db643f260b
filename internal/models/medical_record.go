package models

// The clinical and billing tables below are defined and seeded, but no
// service operation reads or writes them yet.

// LabOrderStatus is the state of a laboratory order.
type LabOrderStatus string

const (
	LabOrdered   LabOrderStatus = "Ordered"
	LabDone      LabOrderStatus = "Done"
	LabCancelled LabOrderStatus = "Cancelled"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Cash"
	PaymentCard      PaymentMethod = "Card"
	PaymentInsurance PaymentMethod = "Insurance"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "Paid"
	PaymentPending       PaymentStatus = "Pending"
	PaymentRefunded      PaymentStatus = "Refunded"
	PaymentPartiallyPaid PaymentStatus = "Partially paid"
)

// MedicalRecord is the clinical note written for an appointment.
type MedicalRecord struct {
	BaseModel
	AppointmentID        uint   `gorm:"index" json:"appointmentId"`
	PatientID            uint   `gorm:"index" json:"patientId"`
	DoctorID             uint   `gorm:"index" json:"doctorId"`
	RecordDate           string `gorm:"size:10" json:"recordDate"`
	Complaints           string `gorm:"type:text" json:"complaints"`
	Examination          string `gorm:"type:text" json:"examination"`
	DiagnosisICD10       string `gorm:"column:diagnosis_icd10;size:16" json:"diagnosisIcd10"`
	DiagnosisDescription string `gorm:"type:text" json:"diagnosisDescription"`
	TreatmentPlan        string `gorm:"type:text" json:"treatmentPlan"`

	// Relations
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"-"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID" json:"-"`
}

// Prescription is a medication issued under a medical record.
type Prescription struct {
	BaseModel
	RecordID         uint   `gorm:"index" json:"recordId"`
	PatientID        uint   `gorm:"index" json:"patientId"`
	DoctorID         uint   `gorm:"index" json:"doctorId"`
	PrescriptionDate string `gorm:"size:10" json:"prescriptionDate"`
	MedicationName   string `gorm:"size:255" json:"medicationName"`
	Dosage           string `gorm:"size:64" json:"dosage"`
	DurationDays     int    `json:"durationDays"`
	Instructions     string `gorm:"type:text" json:"instructions"`
	IsActive         bool   `gorm:"not null" json:"isActive"`

	// Relations
	Record  *MedicalRecord `gorm:"foreignKey:RecordID" json:"-"`
	Patient *Patient       `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  *Doctor        `gorm:"foreignKey:DoctorID" json:"-"`
}

// LabOrder is a laboratory test ordered under a medical record.
type LabOrder struct {
	BaseModel
	RecordID   uint           `gorm:"index" json:"recordId"`
	PatientID  uint           `gorm:"index" json:"patientId"`
	DoctorID   uint           `gorm:"index" json:"doctorId"`
	OrderDate  string         `gorm:"size:10" json:"orderDate"`
	TestName   string         `gorm:"size:255" json:"testName"`
	Status     LabOrderStatus `gorm:"size:16;check:status IN ('Ordered', 'Done', 'Cancelled')" json:"status"`
	ResultDate *string        `gorm:"size:10" json:"resultDate,omitempty"`
	ResultText *string        `gorm:"type:text" json:"resultText,omitempty"`

	// Relations
	Record  *MedicalRecord `gorm:"foreignKey:RecordID" json:"-"`
	Patient *Patient       `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  *Doctor        `gorm:"foreignKey:DoctorID" json:"-"`
}

// Payment records money received for an appointment.
type Payment struct {
	BaseModel
	AppointmentID uint          `gorm:"index" json:"appointmentId"`
	ServiceID     uint          `gorm:"index" json:"serviceId"`
	PaymentDate   string        `gorm:"size:10" json:"paymentDate"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `gorm:"size:16;check:payment_method IN ('Cash', 'Card', 'Insurance')" json:"paymentMethod"`
	PaymentStatus PaymentStatus `gorm:"size:16;check:payment_status IN ('Paid', 'Pending', 'Refunded', 'Partially paid')" json:"paymentStatus"`

	// Relations
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
	Service     *Service     `gorm:"foreignKey:ServiceID" json:"-"`
}
