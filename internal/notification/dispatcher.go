package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"papershop/internal/domain/model"
	"papershop/internal/mailer"

	"golang.org/x/sync/errgroup"
)

// 1通あたりの送信上限。超えたら普通の送信失敗として扱う。
const sendTimeout = 10 * time.Second

// Dispatcher は注文メール2通（管理者通知・顧客確認）の組み立てと送信。
type Dispatcher struct {
	mailer  mailer.Mailer
	from    string
	adminTo string
	logger  *slog.Logger
}

func NewDispatcher(m mailer.Mailer, from string, adminTo string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{mailer: m, from: from, adminTo: adminTo, logger: logger}
}

// SendAdminNotification は新規注文を運用側の固定アドレスに知らせる。
func (d *Dispatcher) SendAdminNotification(ctx context.Context, o model.Order, items []model.OrderItem) (string, error) {
	html, err := renderTemplate(adminTemplate, newOrderEmailData(o, items))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	return d.mailer.Send(ctx, mailer.Message{
		From:    d.from,
		To:      []string{d.adminTo},
		Subject: fmt.Sprintf("🔔 New Order: %s", o.OrderNumber),
		HTML:    html,
	})
}

// SendCustomerConfirmation は顧客本人に注文確認を送る。
func (d *Dispatcher) SendCustomerConfirmation(ctx context.Context, o model.Order, items []model.OrderItem) (string, error) {
	html, err := renderTemplate(customerTemplate, newOrderEmailData(o, items))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	return d.mailer.Send(ctx, mailer.Message{
		From:    d.from,
		To:      []string{o.CustomerEmail},
		Subject: fmt.Sprintf("✅ Order Confirmed: %s", o.OrderNumber),
		HTML:    html,
	})
}

// SendResult は宛先ごとの送信結果。
type SendResult struct {
	Success bool   `json:"success"`
	ID      string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DispatchResult struct {
	Admin    SendResult `json:"admin"`
	Customer SendResult `json:"customer"`
}

// DispatchOrderEmails は2通を並行送信して両方の完了を待つ。
// 片方が失敗してももう片方は止めない。失敗はログに残すだけ。
func (d *Dispatcher) DispatchOrderEmails(ctx context.Context, o model.Order, items []model.OrderItem) DispatchResult {
	var res DispatchResult
	var g errgroup.Group

	g.Go(func() error {
		id, err := d.SendAdminNotification(ctx, o, items)
		res.Admin = toSendResult(id, err)
		if err != nil {
			d.logger.Error("admin notification failed", "order_number", o.OrderNumber, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		id, err := d.SendCustomerConfirmation(ctx, o, items)
		res.Customer = toSendResult(id, err)
		if err != nil {
			d.logger.Error("customer confirmation failed", "order_number", o.OrderNumber, "error", err)
		}
		return nil
	})

	_ = g.Wait()
	return res
}

func toSendResult(id string, err error) SendResult {
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}
	return SendResult{Success: true, ID: id}
}
