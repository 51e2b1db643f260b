package models

// Doctor is a staff record. Only active doctors are offered for booking.
type Doctor struct {
	BaseModel
	FullName          string  `gorm:"size:255;index" json:"fullName"`
	Specialization    string  `gorm:"size:100" json:"specialization"`
	LicenseNumber     string  `gorm:"size:32" json:"licenseNumber"`
	Phone             string  `gorm:"size:32" json:"phone"`
	Email             string  `gorm:"size:255" json:"email"`
	OfficeNumber      string  `gorm:"size:16" json:"officeNumber"`
	HireDate          string  `gorm:"size:10" json:"hireDate"`
	ConsultationPrice float64 `json:"consultationPrice"`
	IsActive          bool    `gorm:"not null" json:"isActive"`
}
