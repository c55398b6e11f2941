package email

import "craftlink_backend/internal/logger"

// NoopSender используется, когда отправка почты выключена в конфигурации.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (e *NoopSender) Send(to, subject, _ string) error {
	logger.Debug("email sending disabled, message dropped", "to", to, "subject", subject)
	return nil
}
