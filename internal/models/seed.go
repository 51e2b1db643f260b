package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Seed inserts the demonstration data set in one transaction. It does nothing
// when the users table already has rows, and reports whether it seeded.
func Seed(db *gorm.DB, scheme PasswordScheme) (bool, error) {
	var users int64
	if err := db.Model(&User{}).Count(&users).Error; err != nil {
		return false, fmt.Errorf("models: count users: %w", err)
	}
	if users > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		male, female := GenderMale, GenderFemale
		covered, supplemental, selfPay := InsuranceCovered, InsuranceSupplemental, InsuranceSelfPay

		patients := []*Patient{
			{MedicalCardNumber: "MC001", FullName: "Ivanov Ivan Ivanovich", BirthDate: "1980-05-15", Gender: &male,
				Address: "10 Lenin St", Phone: "79150001122", Email: "ivanov@mail.ru", PassportSeries: "1234",
				PassportNumber: "567890", InsurancePolicyNumber: "INS001", InsuranceType: &covered,
				InsuranceCompany: "Insurance Company 1", RegistrationDate: "2023-01-12"},
			{MedicalCardNumber: "MC002", FullName: "Petrov Sergey Olegovich", BirthDate: "1985-08-22", Gender: &male,
				Address: "25 Pushkin St", Phone: "79160004567", Email: "petrov.sergey@mail.ru", PassportSeries: "4321",
				PassportNumber: "098765", InsurancePolicyNumber: "INS002", InsuranceType: &supplemental,
				InsuranceCompany: "Insurance Company 2", RegistrationDate: "2023-03-08"},
			{MedicalCardNumber: "MC003", FullName: "Sidorova Anna Petrovna", BirthDate: "1990-11-30", Gender: &female,
				Address: "30 Gorky St", Phone: "79170007890", Email: "sidorova@mail.ru", PassportSeries: "5678",
				PassportNumber: "123456", InsurancePolicyNumber: "INS003", InsuranceType: &selfPay,
				InsuranceCompany: "Insurance Company 3", RegistrationDate: "2024-02-15"},
		}
		if err := tx.Create(&patients).Error; err != nil {
			return fmt.Errorf("patients: %w", err)
		}

		doctors := []*Doctor{
			{FullName: "Sidorov Alexey Nikolaevich", Specialization: "Therapist", LicenseNumber: "LN001", Phone: "79151112233",
				Email: "sidorov@clinic.ru", OfficeNumber: "101", HireDate: "2020-04-01", ConsultationPrice: 1200, IsActive: true},
			{FullName: "Orlov Dmitry Sergeevich", Specialization: "Surgeon", LicenseNumber: "LN002", Phone: "79153334455",
				Email: "orlov@clinic.ru", OfficeNumber: "102", HireDate: "2021-06-15", ConsultationPrice: 1500, IsActive: true},
			{FullName: "Kuznetsova Elena Petrovna", Specialization: "Pediatrician", LicenseNumber: "LN003", Phone: "79156667788",
				Email: "kuznetsova@clinic.ru", OfficeNumber: "103", HireDate: "2022-09-10", ConsultationPrice: 1300, IsActive: true},
		}
		if err := tx.Create(&doctors).Error; err != nil {
			return fmt.Errorf("doctors: %w", err)
		}

		services := []*Service{
			{ServiceName: "Therapist consultation", ServiceCategory: "Consultation", PriceInsurance: 1200,
				PriceSupplemental: 1500, PricePaid: 1800, DurationMinutes: 30, IsActive: true},
			{ServiceName: "Surgeon consultation", ServiceCategory: "Consultation", PriceInsurance: 1500,
				PriceSupplemental: 1800, PricePaid: 2000, DurationMinutes: 45, IsActive: true},
			{ServiceName: "Pediatrician consultation", ServiceCategory: "Consultation", PriceInsurance: 1300,
				PriceSupplemental: 1600, PricePaid: 1900, DurationMinutes: 30, IsActive: true},
		}
		if err := tx.Create(&services).Error; err != nil {
			return fmt.Errorf("services: %w", err)
		}

		appointments := []*Appointment{
			{PatientID: patients[0].ID, DoctorID: doctors[0].ID, AppointmentDate: "2024-03-01", AppointmentTime: "10:00:00",
				AppointmentType: TypeInitial, Status: StatusCompleted, Price: 1200, Notes: "General examination"},
			{PatientID: patients[1].ID, DoctorID: doctors[1].ID, AppointmentDate: "2024-03-02", AppointmentTime: "11:00:00",
				AppointmentType: TypeFollowUp, Status: StatusScheduled, Price: 1500, Notes: "Consultation"},
			{PatientID: patients[2].ID, DoctorID: doctors[2].ID, AppointmentDate: "2024-03-03", AppointmentTime: "12:00:00",
				AppointmentType: TypePreventive, Status: StatusInProgress, Price: 1300, Notes: "Preventive examination"},
		}
		if err := tx.Create(&appointments).Error; err != nil {
			return fmt.Errorf("appointments: %w", err)
		}

		records := []*MedicalRecord{
			{AppointmentID: appointments[0].ID, PatientID: patients[0].ID, DoctorID: doctors[0].ID, RecordDate: "2024-03-01",
				Complaints: "Headache", Examination: "General examination", DiagnosisICD10: "R51",
				DiagnosisDescription: "Tension headache", TreatmentPlan: "Rest and paracetamol"},
			{AppointmentID: appointments[1].ID, PatientID: patients[1].ID, DoctorID: doctors[1].ID, RecordDate: "2024-03-02",
				Complaints: "Abdominal pain", Examination: "Abdominal palpation", DiagnosisICD10: "R10.4",
				DiagnosisDescription: "Abdominal pain", TreatmentPlan: "Ibuprofen and diet"},
			{AppointmentID: appointments[2].ID, PatientID: patients[2].ID, DoctorID: doctors[2].ID, RecordDate: "2024-03-03",
				Complaints: "Cough", Examination: "Lung auscultation", DiagnosisICD10: "R05",
				DiagnosisDescription: "Acute bronchitis", TreatmentPlan: "Amoxicillin and inhalations"},
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("medical records: %w", err)
		}

		prescriptions := []*Prescription{
			{RecordID: records[0].ID, PatientID: patients[0].ID, DoctorID: doctors[0].ID, PrescriptionDate: "2024-03-01",
				MedicationName: "Amoxicillin", Dosage: "500 mg", DurationDays: 7, Instructions: "3 times a day", IsActive: true},
			{RecordID: records[1].ID, PatientID: patients[1].ID, DoctorID: doctors[1].ID, PrescriptionDate: "2024-03-02",
				MedicationName: "Ibuprofen", Dosage: "200 mg", DurationDays: 5, Instructions: "2 times a day", IsActive: true},
			{RecordID: records[2].ID, PatientID: patients[2].ID, DoctorID: doctors[2].ID, PrescriptionDate: "2024-03-03",
				MedicationName: "Paracetamol", Dosage: "500 mg", DurationDays: 3, Instructions: "3 times a day", IsActive: true},
		}
		if err := tx.Create(&prescriptions).Error; err != nil {
			return fmt.Errorf("prescriptions: %w", err)
		}

		resultDate, resultText := "2024-03-02", "Within normal limits"
		labOrders := []*LabOrder{
			{RecordID: records[0].ID, PatientID: patients[0].ID, DoctorID: doctors[0].ID, OrderDate: "2024-03-01",
				TestName: "Complete blood count", Status: LabDone, ResultDate: &resultDate, ResultText: &resultText},
			{RecordID: records[1].ID, PatientID: patients[1].ID, DoctorID: doctors[1].ID, OrderDate: "2024-03-02",
				TestName: "Urinalysis", Status: LabOrdered},
			{RecordID: records[2].ID, PatientID: patients[2].ID, DoctorID: doctors[2].ID, OrderDate: "2024-03-03",
				TestName: "Blood chemistry panel", Status: LabCancelled},
		}
		if err := tx.Create(&labOrders).Error; err != nil {
			return fmt.Errorf("lab orders: %w", err)
		}

		payments := []*Payment{
			{AppointmentID: appointments[0].ID, ServiceID: services[0].ID, PaymentDate: "2024-03-01", Amount: 1200,
				PaymentMethod: PaymentCard, PaymentStatus: PaymentPaid},
			{AppointmentID: appointments[1].ID, ServiceID: services[1].ID, PaymentDate: "2024-03-02", Amount: 1500,
				PaymentMethod: PaymentCash, PaymentStatus: PaymentPaid},
			{AppointmentID: appointments[2].ID, ServiceID: services[2].ID, PaymentDate: "2024-03-03", Amount: 1300,
				PaymentMethod: PaymentInsurance, PaymentStatus: PaymentPaid},
		}
		if err := tx.Create(&payments).Error; err != nil {
			return fmt.Errorf("payments: %w", err)
		}

		users := []*User{
			{Login: "admin", Role: RoleAdmin},
			{Login: "ivanov", Role: RoleClient, PatientID: &patients[0].ID},
			{Login: "petrov", Role: RoleClient, PatientID: &patients[1].ID},
			{Login: "sidorova", Role: RoleClient, PatientID: &patients[2].ID},
		}
		passwords := []string{"admin", "ivanov123", "petrov123", "sidorova123"}
		for i, u := range users {
			if err := u.SetPassword(scheme, passwords[i]); err != nil {
				return fmt.Errorf("users: %w", err)
			}
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("users: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("models: seed: %w", err)
	}
	return true, nil
}
