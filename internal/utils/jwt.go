package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clinic-desk-server/internal/config"
	"clinic-desk-server/internal/models"
)

// Claims represents the JWT claims of a signed-in front-desk user.
type Claims struct {
	UserID    uint        `json:"user_id"`
	Login     string      `json:"login"`
	Role      models.Role `json:"role"`
	PatientID *uint       `json:"patient_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs an access token for the user. Client accounts carry
// their patient id so self-service routes never trust the request body.
func GenerateToken(userID uint, login string, role models.Role, patientID *uint, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Login:     login,
		Role:      role,
		PatientID: patientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWTExpirationMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a JWT token.
func ValidateToken(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
