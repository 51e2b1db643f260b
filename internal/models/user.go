package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// PasswordScheme selects how user passwords are stored and compared.
type PasswordScheme string

const (
	// PasswordPlain stores the password as given and compares by equality.
	PasswordPlain PasswordScheme = "plain"
	// PasswordBcrypt stores a bcrypt hash.
	PasswordBcrypt PasswordScheme = "bcrypt"
)

// User is a login credential. Client users are linked to a patient; admin
// users are not.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Login     string    `gorm:"uniqueIndex;size:64;not null" json:"login"`
	Password  string    `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role      Role      `gorm:"size:16;not null;check:role IN ('admin', 'client')" json:"role"`
	PatientID *uint     `gorm:"index" json:"patientId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// SetPassword stores the password according to the scheme.
func (u *User) SetPassword(scheme PasswordScheme, password string) error {
	switch scheme {
	case "", PasswordPlain:
		u.Password = password
	case PasswordBcrypt:
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	default:
		return fmt.Errorf("models: unknown password scheme %q", scheme)
	}
	return nil
}

// CheckPassword compares a password with the stored one.
func (u *User) CheckPassword(scheme PasswordScheme, password string) bool {
	if scheme == PasswordBcrypt {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}
	return u.Password == password
}
