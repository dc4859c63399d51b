// Package crypto issues and verifies the admin tokens that guard write routes.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// JWTIssuer is the issuer name
	JWTIssuer = "helloworld-api"

	// AdminJWTExpiration is the admin token expiration (24 hours)
	AdminJWTExpiration = 24 * time.Hour

	// JWTSecretSize is the size of generated JWT secrets (32 bytes)
	JWTSecretSize = 32
)

// ErrSecretRequired is returned when no signing secret is configured
var ErrSecretRequired = errors.New("JWT secret is required")

// AdminClaims represents JWT claims for admin authentication
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWTSecret generates a cryptographically secure random JWT secret
// Returns base64-encoded 32-byte secret
func GenerateJWTSecret() (string, error) {
	secret := make([]byte, JWTSecretSize)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}

	return base64.StdEncoding.EncodeToString(secret), nil
}

// GenerateAdminJWT signs an admin token for email
// Returns the JWT token string and expiration timestamp
func GenerateAdminJWT(email string, jwtSecretBase64 string) (token string, expiresAt time.Time, err error) {
	if email == "" {
		return "", time.Time{}, fmt.Errorf("email is required")
	}

	jwtSecret, err := decodeSecret(jwtSecretBase64)
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now().UTC()
	expiresAt = now.Add(AdminJWTExpiration)

	claims := AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   email,
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign JWT token: %w", err)
	}

	return token, expiresAt, nil
}

// VerifyAdminJWT verifies a JWT token and returns the claims
// Returns error if token is invalid, expired, or signature doesn't match
func VerifyAdminJWT(tokenString string, jwtSecretBase64 string) (*AdminClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is required")
	}

	jwtSecret, err := decodeSecret(jwtSecretBase64)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	}, jwt.WithIssuer(JWTIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

func decodeSecret(jwtSecretBase64 string) ([]byte, error) {
	if jwtSecretBase64 == "" {
		return nil, ErrSecretRequired
	}

	secret, err := base64.StdEncoding.DecodeString(jwtSecretBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT secret: %w", err)
	}
	return secret, nil
}
