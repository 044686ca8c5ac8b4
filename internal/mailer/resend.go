package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// ResendMailer はResend実装。キーが空でも生成はでき、送信時にErrAPIKeyMissingを返す。
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	m := &ResendMailer{}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if m.client == nil {
		return "", ErrAPIKeyMissing
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
