package mailer

import (
	"context"
	"errors"
)

// ErrAPIKeyMissing は送信プロバイダのキー未設定。再試行しても直らない設定エラー。
var ErrAPIKeyMissing = errors.New("mail provider api key is not configured")

// Message は1通分の送信内容。
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer はメール送信の約束。戻り値はプロバイダ側の送信ID。
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
