package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"renta-autos/internal/config"
)

type EmailService interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
	SendAlertEmail(ctx context.Context, toEmail, fullName, carLabel, alertMessage string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	subject := "Password Reset - Renta Autos Back Office"
	resetLink := fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #111827;">Hello, %s</h2>
	<p>We received a request to reset the password for your Renta Autos back-office account.</p>
	<p>Click the button below to choose a new password. The link expires in <strong>1 hour</strong>.</p>
	<div style="text-align: center; margin: 30px 0;">
		<a href="%s" style="background-color: #f59e0b; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">Reset my password</a>
	</div>
	<p style="font-size: 14px; color: #6b7280;">
		If the button does not work, copy this link into your browser:<br>
		<a href="%s" style="color: #f59e0b; word-break: break-all;">%s</a>
	</p>
	<p style="font-size: 14px; color: #6b7280;">
		If you did not request this reset, ignore this email. Never share the reset link with anyone.
	</p>
</body>
</html>`, fullName, resetLink, resetLink, resetLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Renta Autos <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *emailService) SendAlertEmail(ctx context.Context, toEmail, fullName, carLabel, alertMessage string) error {
	subject := fmt.Sprintf("High-severity alert: %s", carLabel)
	alertsLink := fmt.Sprintf("https://%s/alerts", s.config.Domain)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #111827;">Hello, %s</h2>
	<p>A vehicle in your fleet was returned in bad condition:</p>
	<div style="background-color: #fef2f2; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ef4444;">
		<strong>%s</strong><br>%s
	</div>
	<div style="text-align: center; margin: 30px 0;">
		<a href="%s" style="background-color: #ef4444; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">Review alerts</a>
	</div>
</body>
</html>`, fullName, carLabel, alertMessage, alertsLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Renta Autos <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
