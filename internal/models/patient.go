package models

// Gender is constrained to two values at the store level.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// InsuranceType selects which price tier applies to a patient.
type InsuranceType string

const (
	InsuranceCovered      InsuranceType = "Insurance"
	InsuranceSupplemental InsuranceType = "Supplemental"
	InsuranceSelfPay      InsuranceType = "Self-pay"
)

// Patient is the demographic and insurance record of a clinic patient.
// Patients are never hard-deleted.
type Patient struct {
	BaseModel
	MedicalCardNumber     string         `gorm:"size:32" json:"medicalCardNumber"`
	FullName              string         `gorm:"size:255;index" json:"fullName"`
	BirthDate             string         `gorm:"size:10" json:"birthDate"`
	Gender                *Gender        `gorm:"size:1;check:gender IN ('M', 'F')" json:"gender,omitempty"`
	Address               string         `gorm:"size:255" json:"address"`
	Phone                 string         `gorm:"size:32" json:"phone"`
	Email                 string         `gorm:"size:255" json:"email"`
	PassportSeries        string         `gorm:"size:16" json:"passportSeries"`
	PassportNumber        string         `gorm:"size:16" json:"passportNumber"`
	InsurancePolicyNumber string         `gorm:"size:64" json:"insurancePolicyNumber"`
	InsuranceType         *InsuranceType `gorm:"size:16;check:insurance_type IN ('Insurance', 'Supplemental', 'Self-pay')" json:"insuranceType,omitempty"`
	InsuranceCompany      string         `gorm:"size:255" json:"insuranceCompany"`
	RegistrationDate      string         `gorm:"size:10" json:"registrationDate"`
}
