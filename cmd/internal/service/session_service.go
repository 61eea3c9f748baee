package service

import (
	"crypto/subtle"
	"sync"
	"time"

	"lodelfer/cmd/internal/utils"
	"lodelfer/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// Session lifetime. The original UI had no timeout at all; the registry
// needs a horizon so revoked-by-expiry sessions can be collected.
const sessionTTL = 12 * time.Hour

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// DefaultSessionService models authentication as an explicit session
// object instead of an ambient flag: login issues a signed token whose ID
// is registered here, and sign-out deletes the ID, revoking the token
// immediately regardless of its expiry.
type DefaultSessionService struct {
	Validate *validator.Validate

	password string
	secret   []byte

	mu     sync.Mutex
	active map[string]time.Time // jti -> expiry
}

func NewSessionService(adminPassword string, secret []byte, validate *validator.Validate) *DefaultSessionService {
	return &DefaultSessionService{
		Validate: validate,
		password: adminPassword,
		secret:   secret,
		active:   make(map[string]time.Time),
	}
}

// Login compares the submitted password against the configured admin
// password and, on match, issues a session token. Wrong password is an
// inline 401; the form stays open on the caller's side.
func (s *DefaultSessionService) Login(req *LoginRequest) (*LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) != 1 {
		return nil, apierror.WrongPasswordError
	}

	now := time.Now()
	expiry := now.Add(sessionTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Errorf("failed to sign session token: %v", err)
		return nil, apierror.InternalServerError
	}

	s.mu.Lock()
	s.collectExpiredLocked(now)
	s.active[claims.ID] = expiry
	s.mu.Unlock()

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiry.UTC().Format(time.RFC3339),
	}, nil
}

// Logout revokes the session carried by the token. Unknown or already
// revoked tokens are rejected the same way as malformed ones.
func (s *DefaultSessionService) Logout(token string) apierror.ErrorResponse {
	jti, apierr := s.verifyToken(token)
	if apierr != nil {
		return apierr
	}

	s.mu.Lock()
	delete(s.active, jti)
	s.mu.Unlock()
	return nil
}

// Verify checks that the token is well-signed, unexpired and still
// registered (not signed out).
func (s *DefaultSessionService) Verify(token string) apierror.ErrorResponse {
	_, apierr := s.verifyToken(token)
	return apierr
}

func (s *DefaultSessionService) verifyToken(token string) (string, apierror.ErrorResponse) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", apierror.InvalidAuthTokenError
	}

	s.mu.Lock()
	_, ok := s.active[claims.ID]
	s.mu.Unlock()
	if !ok {
		return "", apierror.InvalidAuthTokenError
	}
	return claims.ID, nil
}

func (s *DefaultSessionService) collectExpiredLocked(now time.Time) {
	for jti, expiry := range s.active {
		if expiry.Before(now) {
			delete(s.active, jti)
		}
	}
}
