package jwtmanager

import (
	"fmt"
	"internistika-service/internal/app/config"
	"internistika-service/internal/pkg/constvars"
	"internistika-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTManager signs and verifies HS256 session tokens for doctors.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// Claims decoded from a verified token.
type Claims struct {
	DoctorID string
	Email    string
}

func NewJWTManager(internalConfig *config.InternalConfig) *JWTManager {
	return &JWTManager{
		secret: []byte(internalConfig.JWT.Secret),
		ttl:    time.Duration(internalConfig.JWT.ExpTimeInHour) * time.Hour,
	}
}

// CreateToken issues a token carrying only the doctor id and email.
func (j *JWTManager) CreateToken(doctorID, email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		constvars.JWTClaimDoctorID: doctorID,
		constvars.JWTClaimEmail:    email,
		"iat":                      now.Unix(),
		"exp":                      now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// VerifyToken validates the signature and expiry and returns the doctor
// claims. Any parse or validity failure maps to the same 401 error.
func (j *JWTManager) VerifyToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	doctorID, _ := mapClaims[constvars.JWTClaimDoctorID].(string)
	email, _ := mapClaims[constvars.JWTClaimEmail].(string)
	if doctorID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return &Claims{DoctorID: doctorID, Email: email}, nil
}
