package service

import (
	"errors"
	"testing"

	"github.com/aiya-partner/partner-api/internal/config"
)

func TestSendRegistrationConfirmDisabled(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false})

	err := svc.SendRegistrationConfirm("th-TH", "somchai@example.com", "Somchai", "SOM5678")
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}
}

func TestSendRegistrationConfirmNotConfigured(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: true})

	err := svc.SendRegistrationConfirm("th-TH", "somchai@example.com", "Somchai", "SOM5678")
	if !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}
}

func TestSendRegistrationConfirmInvalidRecipient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "noreply@example.com",
	})

	err := svc.SendRegistrationConfirm("th-TH", "not-an-address", "Somchai", "SOM5678")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	rejected := []error{
		errors.New("550 5.1.1 user unknown"),
		errors.New("550 requested action not taken: mailbox unavailable"),
		errors.New("recipient address rejected: access denied"),
	}
	for _, err := range rejected {
		if !isEmailRecipientRejected(err) {
			t.Fatalf("expected %q classified as recipient rejected", err)
		}
	}
	if isEmailRecipientRejected(errors.New("dial tcp: connection refused")) {
		t.Fatalf("transient error must not classify as recipient rejected")
	}
}
