package clinic

import (
	"context"

	"gorm.io/gorm"

	"clinic-desk-server/internal/models"
)

// AuthenticatedUser is the user record returned by a successful login.
type AuthenticatedUser struct {
	ID          uint        `json:"id"`
	Login       string      `json:"login"`
	Role        models.Role `json:"role"`
	PatientID   *uint       `json:"patientId,omitempty"`
	PatientName *string     `json:"patientName,omitempty"`
}

type credentialRow struct {
	AuthenticatedUser
	Password string
}

// Authenticate looks up a user by login and password. A wrong login or
// password is ErrNotFound. With the plain scheme the stored password is
// compared by exact equality.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*AuthenticatedUser, error) {
	q := s.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.login, u.role, u.patient_id, p.full_name AS patient_name, u.password").
		Joins("LEFT JOIN patients AS p ON u.patient_id = p.id").
		Where("u.login = ?", login)
	if s.passwords != models.PasswordBcrypt {
		q = q.Where("u.password = ?", password)
	}

	var rows []credentialRow
	if err := q.Limit(1).Scan(&rows).Error; err != nil {
		return nil, storeError("authenticate", err)
	}
	if len(rows) == 0 {
		return nil, storeError("authenticate", gorm.ErrRecordNotFound)
	}

	row := rows[0]
	user := models.User{Password: row.Password}
	if !user.CheckPassword(s.passwords, password) {
		return nil, storeError("authenticate", gorm.ErrRecordNotFound)
	}

	s.logger.Info().Uint("user_id", row.ID).Str("role", string(row.Role)).Msg("user authenticated")
	return &row.AuthenticatedUser, nil
}
