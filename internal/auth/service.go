package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Service checks the single admin credential pair. The configured
// password may be a bcrypt hash or a plain value.
type Service struct {
	username string
	password string
}

func NewService(username, password string) *Service {
	return &Service{username: username, password: password}
}

// Authenticate returns the admin role on success.
func (s *Service) Authenticate(username, password string) (string, error) {
	if s.username == "" || s.password == "" {
		return "", ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if isBcryptHash(s.password) {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	return "ADMIN", nil
}

func isBcryptHash(v string) bool {
	return strings.HasPrefix(v, "$2a$") ||
		strings.HasPrefix(v, "$2b$") ||
		strings.HasPrefix(v, "$2y$")
}
