package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-desk-server/internal/config"
	"clinic-desk-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	patientID := uint(2)

	token, err := GenerateToken(7, "petrov", models.RoleClient, &patientID, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "petrov", claims.Login)
	assert.Equal(t, models.RoleClient, claims.Role)
	require.NotNil(t, claims.PatientID)
	assert.Equal(t, uint(2), *claims.PatientID)
	assert.Equal(t, "7", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateToken_AdminHasNoPatient(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(1, "admin", models.RoleAdmin, nil, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Nil(t, claims.PatientID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(1, "admin", models.RoleAdmin, nil, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token", cfg.JWTSecret)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	_, err = ValidateToken(signed, cfg.JWTSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: models.RoleAdmin})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ValidateToken(unsigned, cfg.JWTSecret)
	assert.Error(t, err)
}
