package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SignupEmailData holds data for the signup and withdrawal confirmation emails.
type SignupEmailData struct {
	Email     string
	Activity  string
	Schedule  string
	SpotsLeft int
}

// EmailService defines the contract for sending roster notification emails.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *SignupEmailData) error
	SendWithdrawalConfirmation(ctx context.Context, data *SignupEmailData) error
}
