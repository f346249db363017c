package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"shiptrack/config"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying the tenant id, email and plan.
func (s *jwtService) Issue(tenant *entity.Tenant) (string, error) {
	now := s.now()
	claims := service.Claims{
		TenantID: tenant.ID,
		Email:    tenant.Email,
		Plan:     tenant.Plan,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tenant.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// Verify parses token and returns its claims. Tampered, expired, malformed
// or non-HMAC tokens are all rejected.
func (s *jwtService) Verify(token string) (*service.Claims, error) {
	claims := &service.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "verify session token")
	}
	if !parsed.Valid || claims.TenantID == uuid.Nil {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// SessionTTL returns the lifetime of issued tokens.
func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}
