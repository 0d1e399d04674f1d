package services

import (
	"context"
	"fmt"
	"log/slog"

	"extracurricular/internal/domain"
)

type emailService struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{logger: logger, mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends the "signup_confirmation" template to the new participant.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupEmailData) error {
	return s.send(ctx, "signup_confirmation", data)
}

// SendWithdrawalConfirmation sends the "withdrawal_confirmation" template to the removed participant.
func (s *emailService) SendWithdrawalConfirmation(ctx context.Context, data *domain.SignupEmailData) error {
	return s.send(ctx, "withdrawal_confirmation", data)
}

func (s *emailService) send(ctx context.Context, templateName string, data *domain.SignupEmailData) error {
	if data == nil {
		return fmt.Errorf("%s data is nil", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	s.logger.DebugContext(ctx, "email sent", "template", templateName, "to", data.Email)
	return nil
}
