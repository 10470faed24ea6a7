package email

import (
	"testing"

	"go-studio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	svc := NewEmailService(&config.Config{
		SMTPHost:     "smtp-relay.brevo.com",
		SMTPUsername: "login@example.com",
		SMTPPassword: "secret",
	})
	assert.True(t, svc.IsConfigured())

	svc = NewEmailService(&config.Config{SMTPHost: "smtp-relay.brevo.com"})
	assert.False(t, svc.IsConfigured())
}

func TestRenderBody(t *testing.T) {
	svc := NewEmailService(&config.Config{})

	body, err := svc.renderBody(SubmissionEmailData{
		SenderName:      "Jo Smith",
		SenderEmail:     "jo@x.com",
		Company:         "Acme",
		Timeline:        "flexible",
		IsDecisionMaker: true,
		ProjectType:     "ecommerce",
		Budget:          "10-20k",
		Message:         "Our checkout abandons constantly",
		ElapsedSeconds:  42,
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Jo Smith")
	assert.Contains(t, body, "jo@x.com")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "flexible")
	assert.Contains(t, body, "ecommerce")
	assert.Contains(t, body, "10-20k")
	assert.Contains(t, body, "Our checkout abandons constantly")
	assert.Contains(t, body, "42s")
}

func TestRenderBodyEscapesHTML(t *testing.T) {
	svc := NewEmailService(&config.Config{})

	body, err := svc.renderBody(SubmissionEmailData{
		SenderName:  "Jo",
		SenderEmail: "jo@x.com",
		Message:     `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestRenderBodyOmitsEmptyCompany(t *testing.T) {
	svc := NewEmailService(&config.Config{})

	body, err := svc.renderBody(SubmissionEmailData{
		SenderName:  "Jo",
		SenderEmail: "jo@x.com",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "Company:")
}
