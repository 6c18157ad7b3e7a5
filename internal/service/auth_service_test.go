package service

import (
	"testing"
	"time"

	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/models"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "test-secret-key-0123456789abcdef",
			ExpireHours: 24,
		},
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	svc := NewAuthService(authTestConfig(), nil)
	affiliate := &models.Affiliate{
		ID:         7,
		Code:       "SOM5678",
		LineUserID: "U1234567890",
	}

	token, expiresAt, err := svc.GenerateJWT(affiliate)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if time.Until(expiresAt) < 23*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", time.Until(expiresAt))
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.AffiliateID != 7 {
		t.Fatalf("expected affiliate id 7, got %d", claims.AffiliateID)
	}
	if claims.Code != "SOM5678" {
		t.Fatalf("expected code SOM5678, got %q", claims.Code)
	}
	if claims.LineUserID != "U1234567890" {
		t.Fatalf("expected line user id kept, got %q", claims.LineUserID)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	issuer := NewAuthService(authTestConfig(), nil)
	token, _, err := issuer.GenerateJWT(&models.Affiliate{ID: 1, Code: "SOM5678"})
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}

	other := authTestConfig()
	other.JWT.SecretKey = "another-secret-key-0123456789abc"
	verifier := NewAuthService(other, nil)
	if _, err := verifier.ParseJWT(token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	svc := NewAuthService(authTestConfig(), nil)
	if _, err := svc.ParseJWT("not-a-token"); err == nil {
		t.Fatalf("expected parse failure for malformed token")
	}
}

func TestLoginWithLineDisabled(t *testing.T) {
	cfg := authTestConfig()
	cfg.LineAuth.Enabled = false
	svc := NewAuthService(cfg, nil)

	if _, _, _, err := svc.LoginWithLine("line-access-token"); err != ErrLineAuthDisabled {
		t.Fatalf("expected ErrLineAuthDisabled, got %v", err)
	}
}
