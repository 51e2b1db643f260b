package clinic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clinic-desk-server/internal/models"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestBookAppointment_NewPatient(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.BookAppointment(ctx, Booking{
		NewPatient: PatientDetails{Name: "  Volkova Irina  ", Phone: "79005556677"},
		DoctorID:   1,
		Date:       "2026-10-20",
		Time:       "14:00:00",
		Type:       models.TypeInitial,
		Notes:      "first visit",
		ServiceIDs: []uint{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(4), res.PatientID)
	assert.Equal(t, 3800.0, res.Total)

	var p models.Patient
	require.NoError(t, db.First(&p, res.PatientID).Error)
	assert.Equal(t, "Volkova Irina", p.FullName)
	assert.Equal(t, "2026-10-15", p.RegistrationDate)

	appt, err := svc.AppointmentByID(ctx, res.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, 3800.0, appt.Price)
	assert.Equal(t, "first visit", appt.Notes)

	attached, err := svc.ListAppointmentServices(ctx, res.AppointmentID)
	require.NoError(t, err)
	require.Len(t, attached, 2)
	assert.Equal(t, 1800.0, attached[0].Price)
	assert.Equal(t, 2000.0, attached[1].Price)
}

func TestBookAppointment_ExistingPatientNoServices(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	patientID := uint(2)

	res, err := svc.BookAppointment(ctx, Booking{
		PatientID: &patientID,
		DoctorID:  2,
		Date:      "2026-10-21",
		Time:      "09:00:00",
		Type:      models.TypeFollowUp,
	})
	require.NoError(t, err)
	assert.Equal(t, patientID, res.PatientID)
	assert.Zero(t, res.Total)
	assert.EqualValues(t, 3, countRows(t, db, &models.Patient{}))

	attached, err := svc.ListAppointmentServices(ctx, res.AppointmentID)
	require.NoError(t, err)
	assert.Empty(t, attached)
}

func TestBookAppointment_RequiresPatientName(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.BookAppointment(context.Background(), Booking{
		NewPatient: PatientDetails{Name: "   "},
		DoctorID:   1,
		Date:       "2026-10-20",
		Time:       "14:00:00",
		Type:       models.TypeInitial,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualValues(t, 3, countRows(t, db, &models.Appointment{}))
}

func TestBookAppointment_RollsBackOnFailure(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.BookAppointment(ctx, Booking{
		NewPatient: PatientDetails{Name: "Ghost Patient"},
		DoctorID:   404,
		Date:       "2026-10-20",
		Time:       "14:00:00",
		Type:       models.TypeInitial,
		ServiceIDs: []uint{1},
	})
	assert.ErrorIs(t, err, ErrConstraint)

	assert.EqualValues(t, 3, countRows(t, db, &models.Patient{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.Appointment{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.AppointmentService{}))

	_, err = svc.BookAppointment(ctx, Booking{
		NewPatient: PatientDetails{Name: "Ghost Patient"},
		DoctorID:   1,
		Date:       "2026-10-20",
		Time:       "14:00:00",
		Type:       models.TypeInitial,
		ServiceIDs: []uint{1, 77},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 3, countRows(t, db, &models.Patient{}))
}

func TestEditAppointment_ReplacesServices(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	patientID := uint(1)

	booked, err := svc.BookAppointment(ctx, Booking{
		PatientID: &patientID, DoctorID: 1, Date: "2026-11-01", Time: "10:00:00",
		Type: models.TypeInitial, ServiceIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	total, err := svc.EditAppointment(ctx, AppointmentEdit{
		ID:         booked.AppointmentID,
		DoctorID:   3,
		Status:     models.StatusCompleted,
		Notes:      "seen by pediatrician",
		ServiceIDs: []uint{3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1900.0, total)

	appt, err := svc.AppointmentByID(ctx, booked.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), appt.DoctorID)
	assert.Equal(t, models.StatusCompleted, appt.Status)
	assert.Equal(t, "seen by pediatrician", appt.Notes)
	assert.Equal(t, 1900.0, appt.Price)
	assert.Equal(t, "2026-11-01", appt.AppointmentDate)

	attached, err := svc.ListAppointmentServices(ctx, booked.AppointmentID)
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.Equal(t, uint(3), attached[0].ServiceID)
	assert.Equal(t, 1900.0, attached[0].Price)
}

func TestEditAppointment_EmptySelectionClearsServices(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AttachService(ctx, 2, 2, 2000, 1))

	total, err := svc.EditAppointment(ctx, AppointmentEdit{ID: 2, DoctorID: 2, Status: models.StatusCancelled})
	require.NoError(t, err)
	assert.Zero(t, total)

	attached, err := svc.ListAppointmentServices(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, attached)
}

func TestEditAppointment_FailureKeepsPreviousState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AttachService(ctx, 2, 2, 2000, 1))

	_, err := svc.EditAppointment(ctx, AppointmentEdit{ID: 2, DoctorID: 2, Status: "Lost", ServiceIDs: []uint{1}})
	assert.ErrorIs(t, err, ErrConstraint)

	_, err = svc.EditAppointment(ctx, AppointmentEdit{ID: 999, DoctorID: 2, Status: models.StatusCompleted})
	assert.ErrorIs(t, err, ErrNotFound)

	appt, err := svc.AppointmentByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, 1500.0, appt.Price)

	attached, err := svc.ListAppointmentServices(ctx, 2)
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.Equal(t, uint(2), attached[0].ServiceID)
}

func TestSelfBook(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	serviceID := uint(3)

	res, err := svc.SelfBook(ctx, 3, SelfBooking{
		DoctorID: 3, Date: "2026-10-30", Time: "16:00:00", Type: models.TypePreventive, ServiceID: &serviceID,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), res.PatientID)
	assert.Equal(t, 1900.0, res.Total)

	mine, err := svc.PatientAppointments(ctx, 3)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, res.AppointmentID, mine[0].ID)
	assert.Equal(t, models.StatusScheduled, mine[0].Status)

	free, err := svc.SelfBook(ctx, 3, SelfBooking{DoctorID: 1, Date: "2026-10-31", Time: "09:00:00", Type: models.TypeFollowUp})
	require.NoError(t, err)
	assert.Zero(t, free.Total)
}

func TestSelfBook_RequiresLinkedPatient(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SelfBook(context.Background(), 0, SelfBooking{DoctorID: 1, Date: "2026-10-30", Time: "16:00:00", Type: models.TypeInitial})
	assert.ErrorIs(t, err, ErrValidation)
}
