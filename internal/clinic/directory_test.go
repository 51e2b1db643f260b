package clinic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-desk-server/internal/models"
)

func TestListPatients_Alphabetical(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePatient(ctx, "Abramova Olga Ivanovna", "79990000000", "")
	require.NoError(t, err)

	patients, err := svc.ListPatients(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(patients))
	for _, p := range patients {
		names = append(names, p.FullName)
	}
	assert.Equal(t, []string{
		"Abramova Olga Ivanovna",
		"Ivanov Ivan Ivanovich",
		"Petrov Sergey Olegovich",
		"Sidorova Anna Petrovna",
	}, names)
}

func TestListDoctors(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	doctors, err := svc.ListDoctors(ctx, false)
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	assert.Equal(t, "Kuznetsova Elena Petrovna", doctors[0].FullName)
	assert.Equal(t, "Orlov Dmitry Sergeevich", doctors[1].FullName)
	assert.Equal(t, "Sidorov Alexey Nikolaevich", doctors[2].FullName)

	require.NoError(t, db.Model(&models.Doctor{}).Where("id = ?", 2).Update("is_active", false).Error)

	active, err := svc.ListDoctors(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, d := range active {
		assert.True(t, d.IsActive)
		assert.NotEqual(t, uint(2), d.ID)
	}

	all, err := svc.ListDoctors(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListServices(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Service{
		ServiceName: "Blood test", ServiceCategory: "Analysis", PricePaid: 500, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Service{
		ServiceName: "Ultrasound", ServiceCategory: "Diagnostics", PricePaid: 2500, IsActive: false,
	}).Error)

	services, err := svc.ListServices(ctx, false)
	require.NoError(t, err)
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.ServiceName)
	}
	assert.Equal(t, []string{
		"Blood test",
		"Pediatrician consultation",
		"Surgeon consultation",
		"Therapist consultation",
		"Ultrasound",
	}, names)

	active, err := svc.ListServices(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 4)
	for _, s := range active {
		assert.NotEqual(t, "Ultrasound", s.ServiceName)
	}
}

func TestServicesByIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.ServicesByIDs(ctx, []uint{2, 1, 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(1), got[1].ID)

	empty, err := svc.ServicesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.ServicesByIDs(ctx, []uint{1, 42})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComputeTotal(t *testing.T) {
	assert.Zero(t, ComputeTotal(nil))
	assert.Equal(t, 1800.0, ComputeTotal([]models.Service{{PricePaid: 1800, PriceInsurance: 1200}}))
	assert.Equal(t, 5700.0, ComputeTotal([]models.Service{
		{PricePaid: 1800}, {PricePaid: 2000}, {PricePaid: 1900},
	}))
}

func TestCreatePatient(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.CreatePatient(context.Background(), "Smirnov Pavel", "79001234567", "smirnov@mail.ru")
	require.NoError(t, err)
	assert.Equal(t, uint(4), id)

	var p models.Patient
	require.NoError(t, db.First(&p, id).Error)
	assert.Equal(t, "Smirnov Pavel", p.FullName)
	assert.Equal(t, "79001234567", p.Phone)
	assert.Equal(t, "smirnov@mail.ru", p.Email)
	assert.Equal(t, "2026-10-15", p.RegistrationDate)
	assert.Nil(t, p.Gender)
	assert.Nil(t, p.InsuranceType)
	assert.Empty(t, p.MedicalCardNumber)
}

func TestAppointmentServices_AttachListClear(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AttachService(ctx, 2, 2, 2000, 1))
	require.NoError(t, svc.AttachService(ctx, 2, 1, 999, 0))

	rows, err := svc.ListAppointmentServices(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Surgeon consultation", rows[0].ServiceName)
	assert.Equal(t, "Consultation", rows[0].ServiceCategory)
	assert.Equal(t, 2000.0, rows[0].Price)
	assert.Equal(t, 1, rows[0].Quantity)
	assert.Equal(t, 999.0, rows[1].Price)
	assert.Equal(t, 1, rows[1].Quantity)

	// Captured prices do not follow later price-list changes.
	require.NoError(t, db.Model(&models.Service{}).Where("id = ?", 2).Update("price_paid", 2600).Error)
	rows, err = svc.ListAppointmentServices(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, rows[0].Price)

	other, err := svc.ListAppointmentServices(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, svc.ClearAppointmentServices(ctx, 2))
	rows, err = svc.ListAppointmentServices(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Clearing an appointment with nothing attached is not an error.
	require.NoError(t, svc.ClearAppointmentServices(ctx, 1))
}

func TestAttachService_UnknownReferences(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AttachService(ctx, 999, 1, 100, 1), ErrConstraint)
	assert.ErrorIs(t, svc.AttachService(ctx, 1, 999, 100, 1), ErrConstraint)
}
