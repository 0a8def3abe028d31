package auth

import (
	"errors"
	"time"

	"workzo_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	purposeAccess = "access"
	purposeVerify = "verify"

	verificationTokenTTL = 24 * time.Hour
)

var (
	ErrTokenInvalid = errors.New("invalid or expired token")
	ErrWrongPurpose = errors.New("token used for wrong purpose")
)

// Claims carried by every WORKZO token. Purpose distinguishes session tokens
// from email-verification tokens so one can never stand in for the other.
type Claims struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateToken issues a session token for the user. TTL comes from config
// (minutes).
func GenerateToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	return sign(userID, role, purposeAccess, time.Duration(cfg.JWT.TTL)*time.Minute)
}

// GenerateVerificationToken issues the 24h token embedded in the
// email-verification link.
func GenerateVerificationToken(userID string) (string, error) {
	return sign(userID, "", purposeVerify, verificationTokenTTL)
}

func sign(userID, role, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetConfig().JWT.Secret))
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, purposeAccess)
}

// ParseVerificationToken validates an email-verification token.
func ParseVerificationToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, purposeVerify)
}

func parse(tokenStr, purpose string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}
