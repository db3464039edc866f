package email

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendPasswordResetEmail(toEmail, toName, token string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromEmail   string
	FrontendURL string // Base URL used to build reset links
}

// emailServiceImpl implements EmailService over net/smtp
type emailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &emailServiceImpl{
		config: config,
		logger: logger,
	}
}

// BuildResetLink constructs the frontend password reset URL:
// <frontendURL>/reset-password?token=<token>&email=<email>
func BuildResetLink(frontendURL, token, toEmail string) string {
	return fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		strings.TrimRight(frontendURL, "/"),
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)
}

// SendPasswordResetEmail delivers a single reset-link email. Transport
// failures are returned to the caller unretried.
func (s *emailServiceImpl) SendPasswordResetEmail(toEmail, toName, token string) error {
	resetLink := BuildResetLink(s.config.FrontendURL, token, toEmail)

	// Without SMTP credentials, log the link instead of sending (development)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("resetLink", resetLink).
			Msg("SMTP credentials not configured - password reset email not sent. Use the link above for testing.")
		return nil
	}

	subject := "Reset Your Password - CourseHub"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Password Reset Request</h2>
				<p>Hello %s,</p>
				<p>We received a request to reset the password for your CourseHub account. Click the button below to choose a new password:</p>

				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Reset Password</a>
				</div>

				<p>This link will expire in 1 hour.</p>

				<p>If you did not request a password reset, please ignore this email.</p>

				<p>Best regards,<br>The CourseHub Team</p>
			</div>
		</body>
		</html>
	`, toName, resetLink)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email over plain SMTP with auth
func (s *emailServiceImpl) sendHTMLEmail(toEmail, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": `text/html; charset="UTF-8"`,
	}

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(msg.String())); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
