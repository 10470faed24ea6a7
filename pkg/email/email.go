package email

import (
	"bytes"
	"fmt"
	"go-studio-backend/config"
	"html/template"
	"net/smtp"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// SubmissionEmailData holds the data for enquiry notification emails
type SubmissionEmailData struct {
	SenderName      string
	SenderEmail     string
	Company         string
	Timeline        string
	IsDecisionMaker bool
	ProjectType     string
	Budget          string
	Message         string
	ElapsedSeconds  int
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
	}
}

// submissionEmailTemplate is the HTML template for enquiry notifications
const submissionEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Project Enquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #111827; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Project Enquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            {{if .Company}}
            <div class="field">
                <div class="label">Company:</div>
                <div class="value">{{.Company}}</div>
            </div>
            {{end}}
            <div class="field">
                <div class="label">Timeline:</div>
                <div class="value">{{.Timeline}}</div>
            </div>
            <div class="field">
                <div class="label">Decision maker:</div>
                <div class="value">{{if .IsDecisionMaker}}Yes{{else}}No{{end}}</div>
            </div>
            <div class="field">
                <div class="label">Project type:</div>
                <div class="value">{{.ProjectType}}</div>
            </div>
            <div class="field">
                <div class="label">Budget:</div>
                <div class="value">{{.Budget}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            <div class="field">
                <div class="label">Time on first step:</div>
                <div class="value">{{.ElapsedSeconds}}s</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Bright Forge Studio contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

// SendSubmissionEmail sends an enquiry notification to the configured recipient
func (s *EmailService) SendSubmissionEmail(data SubmissionEmailData) error {
	body, err := s.renderBody(data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Project enquiry from %s (%s)", data.SenderName, data.ProjectType)

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		data.SenderEmail,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) renderBody(data SubmissionEmailData) (string, error) {
	tmpl, err := template.New("submission").Parse(submissionEmailTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
