package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aiya-partner/partner-api/internal/config"
	"github.com/aiya-partner/partner-api/internal/provider"
	"github.com/aiya-partner/partner-api/internal/queue"
	"github.com/aiya-partner/partner-api/internal/service"

	"github.com/hibiken/asynq"
)

func newEmailTask(t *testing.T, payload queue.RegistrationEmailPayload) *asynq.Task {
	t.Helper()
	task, err := queue.NewRegistrationEmailTask(payload)
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	return task
}

func TestHandleRegistrationEmailInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskRegistrationEmail, []byte("{not-json"))
	if err := consumer.handleRegistrationEmail(context.Background(), task); err == nil {
		t.Fatal("expected unmarshal error for malformed payload")
	}
}

func TestHandleRegistrationEmailSkipEmptyReceiver(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := newEmailTask(t, queue.RegistrationEmailPayload{Name: "Somchai", Code: "SOM5678"})
	if err := consumer.handleRegistrationEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil for empty receiver, got %v", err)
	}
}

func TestHandleRegistrationEmailSkipDisabledService(t *testing.T) {
	emailCfg := &config.EmailConfig{Enabled: false}
	consumer := NewConsumer(&provider.Container{
		EmailService: service.NewEmailService(emailCfg),
	})
	task := newEmailTask(t, queue.RegistrationEmailPayload{
		Locale: "th-TH",
		Email:  "somchai@example.com",
		Name:   "Somchai",
		Code:   "SOM5678",
	})
	if err := consumer.handleRegistrationEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil when email service disabled, got %v", err)
	}
}

func TestRegistrationEmailPayloadRoundTrip(t *testing.T) {
	task := newEmailTask(t, queue.RegistrationEmailPayload{
		Locale: "en-US",
		Email:  "jane@example.com",
		Name:   "Jane Doe",
		Code:   "JAN1234",
	})
	var decoded queue.RegistrationEmailPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("unmarshal payload failed: %v", err)
	}
	if decoded.Email != "jane@example.com" || decoded.Code != "JAN1234" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}
