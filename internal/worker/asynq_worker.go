package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aiya-partner/partner-api/internal/logger"
	"github.com/aiya-partner/partner-api/internal/provider"
	"github.com/aiya-partner/partner-api/internal/queue"
	"github.com/aiya-partner/partner-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskRegistrationEmail, c.handleRegistrationEmail)
}

func (c *Consumer) handleRegistrationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_registration_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RegistrationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_registration_email_unmarshal_failed", "error", err)
		return err
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" {
		logger.Debugw("worker_registration_email_skip_empty_receiver", "code", payload.Code)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_registration_email_skip_email_service_nil", "code", payload.Code)
		return nil
	}
	if err := c.EmailService.SendRegistrationConfirm(payload.Locale, email, payload.Name, payload.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailServiceDisabled),
			errors.Is(err, service.ErrEmailServiceNotConfigured):
			logger.Debugw("worker_registration_email_skip_disabled", "code", payload.Code)
			return nil
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrEmailRecipientRejected):
			// 收件人不可达，重试不会成功
			logger.Warnw("worker_registration_email_skip_bad_receiver",
				"receiver_email", email,
				"code", payload.Code,
				"error", err,
			)
			return nil
		default:
			logger.Warnw("worker_registration_email_send_failed",
				"receiver_email", email,
				"code", payload.Code,
				"error", err,
			)
			return err
		}
	}
	return nil
}
