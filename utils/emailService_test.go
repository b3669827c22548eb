package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubMail(t *testing.T) *struct {
	to      []string
	subject string
	body    string
} {
	t.Helper()
	captured := &struct {
		to      []string
		subject string
		body    string
	}{}

	original := SendMail
	SendMail = func(to []string, subject, body string) error {
		captured.to = to
		captured.subject = subject
		captured.body = body
		return nil
	}
	t.Cleanup(func() { SendMail = original })

	return captured
}

func TestSendOTPEmail(t *testing.T) {
	captured := stubMail(t)

	require.NoError(t, SendOTPEmail("482913", "user@example.com", "Login"))

	assert.Equal(t, []string{"user@example.com"}, captured.to)
	assert.Equal(t, "Your OTP for Login", captured.subject)
	assert.Contains(t, captured.body, "482913")
	assert.Contains(t, captured.body, "CRM SUPPORT")
}

func TestSendPaymentConfirmationEmail(t *testing.T) {
	captured := stubMail(t)

	require.NoError(t, SendPaymentConfirmationEmail("user@example.com", 199.99, "txn-555"))

	assert.Equal(t, []string{"user@example.com"}, captured.to)
	assert.Equal(t, "Payment Confirmation", captured.subject)
	assert.Contains(t, captured.body, "$199.99")
	assert.Contains(t, captured.body, "txn-555")
}
