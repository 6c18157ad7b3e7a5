package queue

import (
	"encoding/json"

	"github.com/aiya-partner/partner-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRegistrationEmail 注册确认邮件任务
	TaskRegistrationEmail = constants.TaskRegistrationEmail
)

// RegistrationEmailPayload 注册确认邮件任务载荷
type RegistrationEmailPayload struct {
	Locale string `json:"locale"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// NewRegistrationEmailTask 创建注册确认邮件任务
func NewRegistrationEmailTask(payload RegistrationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRegistrationEmail, body), nil
}
