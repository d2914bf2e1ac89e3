package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the presented operator password does
// not match the configured hash
var ErrInvalidCredentials = errors.New("invalid credentials")

// tokenTTL is how long an issued operator token stays valid
const tokenTTL = 24 * time.Hour

// TokenService issues operator bearer tokens. The operator password is stored
// only as a bcrypt hash; a successful check yields an HS256-signed JWT the
// admin middleware accepts.
type TokenService struct {
	jwtSecret    []byte
	passwordHash []byte
}

// NewTokenService creates a new TokenService from the JWT signing secret and
// the bcrypt hash of the operator password
func NewTokenService(jwtSecret, operatorPasswordHash string) *TokenService {
	return &TokenService{
		jwtSecret:    []byte(jwtSecret),
		passwordHash: []byte(operatorPasswordHash),
	}
}

// IssueToken verifies the operator password and returns a signed JWT together
// with its lifetime in seconds
func (s *TokenService) IssueToken(password string) (string, int64, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "operator",
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(tokenTTL.Seconds()), nil
}
