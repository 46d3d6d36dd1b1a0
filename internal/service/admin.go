package service

import (
	"context"
	"time"

	"github.com/portfolio/portfolio-server/internal/util"
)

// AdminService checks the admin password. A successful login yields an
// opaque token for the browser to keep; the server keeps no session and
// never validates the token again.
type AdminService struct {
	password     string
	passwordHash string
	now          func() time.Time
}

func NewAdminService(password, passwordHash string) *AdminService {
	return &AdminService{
		password:     password,
		passwordHash: passwordHash,
		now:          time.Now,
	}
}

// Login returns a fresh token when password matches, and an empty token
// with a nil error when it does not.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if !s.matches(password) {
		return "", nil
	}
	return util.GenerateSessionToken(s.now())
}

func (s *AdminService) matches(password string) bool {
	if password == "" {
		return false
	}
	if s.passwordHash != "" {
		return util.CheckPasswordHash(password, s.passwordHash)
	}
	if s.password == "" {
		return false
	}
	return util.ConstantTimeEqual(password, s.password)
}
