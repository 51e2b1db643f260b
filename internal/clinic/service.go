// Package clinic is the service layer between the presentation adapters and
// the store. Every read and write the front desk performs goes through it.
package clinic

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-desk-server/internal/models"
)

var (
	// ErrNotFound is returned when a lookup by id or by credentials finds no row.
	ErrNotFound = errors.New("not found")
	// ErrConstraint wraps foreign-key, check and uniqueness violations.
	ErrConstraint = errors.New("constraint violation")
	// ErrValidation is returned when a workflow is missing required input.
	ErrValidation = errors.New("validation failed")
)

// StatusAll is the sentinel status filter meaning "no status filter".
const StatusAll = "All"

// Service executes the clinic's queries and commands against one store handle.
type Service struct {
	db        *gorm.DB
	logger    zerolog.Logger
	passwords models.PasswordScheme
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for registration dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPasswordScheme selects how Authenticate compares passwords.
func WithPasswordScheme(scheme models.PasswordScheme) Option {
	return func(s *Service) { s.passwords = scheme }
}

// NewService constructs the service layer around an open store handle.
func NewService(db *gorm.DB, logger zerolog.Logger, opts ...Option) *Service {
	if db == nil {
		panic("clinic: database handle required")
	}
	s := &Service{
		db:        db,
		logger:    logger,
		passwords: models.PasswordPlain,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// withTx returns a copy of the service bound to a transaction.
func (s *Service) withTx(tx *gorm.DB) *Service {
	clone := *s
	clone.db = tx
	return &clone
}

// storeError classifies a store error so callers can match it with errors.Is.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("clinic: %s: %w", op, ErrNotFound)
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("clinic: %s: %w: %v", op, ErrConstraint, err)
	}
	return fmt.Errorf("clinic: %s: %w", op, err)
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") || strings.Contains(msg, "duplicate")
}
