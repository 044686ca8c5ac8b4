package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"papershop/internal/cart"
	"papershop/internal/config"
	"papershop/internal/domain/model"
	"papershop/internal/notification"
	repo "papershop/internal/repository"

	"github.com/google/uuid"
)

// Notifier は注文メールの送り先。送信結果は返すが、注文の成否には関与しない。
type Notifier interface {
	DispatchOrderEmails(ctx context.Context, o model.Order, items []model.OrderItem) notification.DispatchResult
}

// CheckoutUsecase はカート＋フォーム入力を受けて注文を確定する。
// 検証 → 金額計算 → 永続化（Tx） → メール通知（ベストエフォート）の順。
type CheckoutUsecase struct {
	tx       repo.TransactionManager
	notifier Notifier
	shipping config.ShippingPolicy
	now      func() time.Time
	logger   *slog.Logger
}

func NewCheckoutUsecase(tx repo.TransactionManager, notifier Notifier, shipping config.ShippingPolicy, logger *slog.Logger) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:       tx,
		notifier: notifier,
		shipping: shipping,
		now:      time.Now,
		logger:   logger,
	}
}

type CheckoutInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	PaymentMethod   string
	Items           []model.CartItem
}

type OrderItemOutput struct {
	ItemCode  string `json:"item_code"`
	Subject   string `json:"subject"`
	Board     string `json:"board"`
	Level     string `json:"level"`
	Type      string `json:"type"`
	YearRange string `json:"year_range"`
	Component string `json:"component"`
	Price     int64  `json:"price"`
}

type OrderOutput struct {
	OrderNumber     string            `json:"order_number"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	CustomerCity    string            `json:"customer_city"`
	PaymentMethod   string            `json:"payment_method"`
	Subtotal        int64             `json:"subtotal"`
	DeliveryCharge  int64             `json:"delivery_charge"`
	TotalAmount     int64             `json:"total_amount"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemOutput `json:"items"`
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (OrderOutput, error) {
	//必須チェック。足りない項目は名前で返し、ここを抜けるまで副作用は無し
	if missing := missingFields(in); len(missing) > 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
	}

	//同じIDはカート側の規約どおり1つに畳む
	c := cart.New(in.Items...)
	if c.TotalItems() == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	for _, it := range c.Items() {
		if it.Price < 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item price")
		}
	}

	subtotal := c.TotalPrice()
	deliveryCharge := u.shipping.ChargeFor(in.CustomerCity, subtotal)

	now := u.now()
	order := model.Order{
		OrderNumber:     newOrderNumber(now),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		CustomerCity:    strings.TrimSpace(in.CustomerCity),
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		Subtotal:        subtotal,
		DeliveryCharge:  deliveryCharge,
		TotalAmount:     subtotal + deliveryCharge,
		Status:          model.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	//注文時点のスナップショット
	items := make([]model.OrderItem, 0, c.TotalItems())
	for _, it := range c.Items() {
		items = append(items, model.OrderItem{
			ItemCode:  it.Code,
			Subject:   it.Subject,
			Board:     it.Board,
			Level:     it.Level,
			Kind:      it.Type,
			YearRange: it.YearRange,
			Component: it.Component,
			Price:     it.Price,
			CreatedAt: now,
		})
	}

	//ヘッダと明細は1つのTxで書く。どちらかが落ちたら注文は残らない
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		order.ID = orderID
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	//メールはベストエフォート。失敗しても注文は成立している
	res := u.notifier.DispatchOrderEmails(ctx, order, items)
	if !res.Admin.Success {
		u.logger.Error("admin notification failed", "order_number", order.OrderNumber, "error", res.Admin.Error)
	}
	if !res.Customer.Success {
		u.logger.Error("customer confirmation failed", "order_number", order.OrderNumber, "error", res.Customer.Error)
	}

	return toOrderOutput(order, items), nil
}

func missingFields(in CheckoutInput) []string {
	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(in.CustomerEmail) == "" {
		missing = append(missing, "customer_email")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		missing = append(missing, "customer_phone")
	}
	if strings.TrimSpace(in.CustomerAddress) == "" {
		missing = append(missing, "customer_address")
	}
	if strings.TrimSpace(in.CustomerCity) == "" {
		missing = append(missing, "customer_city")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		missing = append(missing, "payment_method")
	}
	return missing
}

// 例: EDU-20250828-153012-3F2A。時刻由来＋uuid先頭で同一秒内の衝突を避ける。
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("EDU-%s-%s", now.Format("20060102-150405"), suffix)
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ItemCode:  it.ItemCode,
			Subject:   it.Subject,
			Board:     it.Board,
			Level:     it.Level,
			Type:      it.Kind,
			YearRange: it.YearRange,
			Component: it.Component,
			Price:     it.Price,
		})
	}

	return OrderOutput{
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerCity:    o.CustomerCity,
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        o.Subtotal,
		DeliveryCharge:  o.DeliveryCharge,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}
