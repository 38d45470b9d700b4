package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

const defaultTokenTTL = 60 * time.Minute

// JWTService implements ports.TokenService with HS256-signed tokens carrying
// {sub, role, exp} claims.
type JWTService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewJWTService(secret string, defaultTTL time.Duration) *JWTService {
	if defaultTTL <= 0 {
		defaultTTL = defaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), defaultTTL: defaultTTL}
}

func (s *JWTService) Issue(claims ports.Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Subject,
		"role": claims.Role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

func (s *JWTService) Verify(token string) (ports.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Claims{}, ports.ErrTokenExpired
		}
		return ports.Claims{}, ports.ErrTokenInvalid
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return ports.Claims{}, ports.ErrTokenInvalid
	}

	sub, _ := mc["sub"].(string)
	role, _ := mc["role"].(string)
	if sub == "" || role == "" {
		return ports.Claims{}, ports.ErrTokenInvalid
	}

	return ports.Claims{Subject: sub, Role: role}, nil
}
