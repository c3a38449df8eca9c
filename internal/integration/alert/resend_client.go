// Package alert delivers budget alerts via Resend.
package alert

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/fleetops/finance-hub/internal/application/adapter"
	domainerror "github.com/fleetops/finance-hub/internal/domain/error"
)

// ResendClient implements the adapter.AlertSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers a budget alert via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendAlertInput) (*adapter.SendAlertResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewAlertError(
				domainerror.ErrCodePermanentAlertFailure,
				"permanent alert delivery failure",
				err,
			)
		}
		return nil, domainerror.NewAlertError(
			domainerror.ErrCodeTemporaryAlertFailure,
			"temporary alert delivery failure",
			err,
		)
	}

	return &adapter.SendAlertResult{
		ResendID: resp.Id,
	}, nil
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// MockAlertSender is a mock implementation for testing.
type MockAlertSender struct {
	SentAlerts  []adapter.SendAlertInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockAlertSender creates a new mock alert sender.
func NewMockAlertSender() *MockAlertSender {
	return &MockAlertSender{
		SentAlerts: make([]adapter.SendAlertInput, 0),
	}
}

// Send implements the adapter.AlertSender interface for testing.
func (m *MockAlertSender) Send(ctx context.Context, input adapter.SendAlertInput) (*adapter.SendAlertResult, error) {
	if m.ShouldFail {
		if m.IsPermanent {
			return nil, domainerror.NewAlertError(
				domainerror.ErrCodePermanentAlertFailure,
				"mock permanent failure",
				m.FailError,
			)
		}
		return nil, domainerror.NewAlertError(
			domainerror.ErrCodeTemporaryAlertFailure,
			"mock temporary failure",
			m.FailError,
		)
	}

	m.SentAlerts = append(m.SentAlerts, input)

	return &adapter.SendAlertResult{
		ResendID: fmt.Sprintf("mock-%d", len(m.SentAlerts)),
	}, nil
}

// SetFailure configures the mock to fail with the given error.
func (m *MockAlertSender) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset clears all sent alerts and failure configuration.
func (m *MockAlertSender) Reset() {
	m.SentAlerts = make([]adapter.SendAlertInput, 0)
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.AlertSender = (*ResendClient)(nil)
	_ adapter.AlertSender = (*MockAlertSender)(nil)
)
