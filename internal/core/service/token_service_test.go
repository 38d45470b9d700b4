package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.Issue(ports.Claims{Subject: "alice@example.com", Role: "admin"}, time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	// Issue clamps non-positive TTLs to the default, so an expired token has
	// to be built directly.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice@example.com",
		"role": "user",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ports.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Issue(ports.Claims{Subject: "bob@example.com", Role: "user"}, time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ports.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.Issue(ports.Claims{Subject: "bob@example.com", Role: "user"}, time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, ports.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_MissingClaims(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	noRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := noRole.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ports.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing role, got %v", err)
	}
}

func TestJWTService_NoExpiry(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	eternal := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice@example.com",
		"role": "user",
	})
	signed, err := eternal.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ports.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for token without expiry, got %v", err)
	}
}
