package auth

import (
	"errors"
	"net/http"

	"github.com/mwielgus/finance-tracker/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

// Service is the authentication boundary: it verifies credentials, issues
// access tokens and guards protected routes. Everything past the middleware
// works with a resolved numeric owner id, never the raw principal.
type Service interface {
	Login(email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Login verifies the email/password pair and returns a signed access token
// whose claims carry the principal email. Unknown accounts and wrong
// passwords are indistinguishable to the caller.
func (s *service) Login(email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternalError
	}

	if !s.userService.VerifyPassword(existingUser, password) {
		return "", ErrInvalidCredentials
	}

	return s.jwtManager.GenerateAccessJWT(existingUser.Email, defaultJWTDuration)
}
