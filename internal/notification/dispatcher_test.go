package notification_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"papershop/internal/domain/model"
	"papershop/internal/mailer"
	"papershop/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MailerMock struct {
	mock.Mock
}

func (m *MailerMock) Send(ctx context.Context, msg mailer.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

const (
	testFrom    = "EduMaterials <onboarding@resend.dev>"
	testAdminTo = "ops@example.com"
)

func newDispatcher(m mailer.Mailer) *notification.Dispatcher {
	return notification.NewDispatcher(m, testFrom, testAdminTo, slog.New(slog.DiscardHandler))
}

func sampleOrder() (model.Order, []model.OrderItem) {
	order := model.Order{
		OrderNumber:     "EDU-20260828-153012-3F2A",
		CustomerName:    "Rahim Uddin",
		CustomerEmail:   "rahim@example.com",
		CustomerPhone:   "+8801712345678",
		CustomerAddress: "House 12, Road 5",
		CustomerCity:    "Dhaka",
		PaymentMethod:   "bKash",
		Subtotal:        550,
		DeliveryCharge:  50,
		TotalAmount:     600,
		Status:          model.OrderStatusPending,
	}
	items := []model.OrderItem{
		{ItemCode: "0580", Subject: "Mathematics", Board: "Cambridge", Level: "IGCSE", Kind: "Past Paper", Price: 390},
		{ItemCode: "0580-MS", Subject: "Mathematics", Board: "Cambridge", Level: "IGCSE", Kind: "Mark Scheme", Price: 160},
	}
	return order, items
}

func TestSendAdminNotification_RendersOrder(t *testing.T) {
	m := new(MailerMock)
	d := newDispatcher(m)
	order, items := sampleOrder()

	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return len(msg.To) == 1 && msg.To[0] == testAdminTo &&
			msg.From == testFrom &&
			strings.Contains(msg.Subject, order.OrderNumber) &&
			strings.Contains(msg.HTML, "• 0580 - Mathematics (Cambridge IGCSE) - ৳390") &&
			strings.Contains(msg.HTML, "• 0580-MS - Mathematics (Cambridge IGCSE) - ৳160") &&
			strings.Contains(msg.HTML, "৳600")
	})).Return("adm_1", nil)

	id, err := d.SendAdminNotification(context.Background(), order, items)

	assert.NoError(t, err)
	assert.Equal(t, "adm_1", id)
	m.AssertExpectations(t)
}

func TestSendCustomerConfirmation_AddressesCustomer(t *testing.T) {
	m := new(MailerMock)
	d := newDispatcher(m)
	order, items := sampleOrder()

	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return len(msg.To) == 1 && msg.To[0] == order.CustomerEmail &&
			strings.Contains(msg.Subject, "Order Confirmed") &&
			strings.Contains(msg.HTML, order.CustomerName) &&
			strings.Contains(msg.HTML, "2-3 business days")
	})).Return("cus_1", nil)

	id, err := d.SendCustomerConfirmation(context.Background(), order, items)

	assert.NoError(t, err)
	assert.Equal(t, "cus_1", id)
	m.AssertExpectations(t)
}

// 送料0のときは金額ではなくFree表記
func TestSendCustomerConfirmation_FreeDeliveryLabel(t *testing.T) {
	m := new(MailerMock)
	d := newDispatcher(m)
	order, items := sampleOrder()
	order.DeliveryCharge = 0
	order.TotalAmount = order.Subtotal

	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return strings.Contains(msg.HTML, "<strong>Delivery Charge:</strong> Free")
	})).Return("cus_2", nil)

	_, err := d.SendCustomerConfirmation(context.Background(), order, items)

	assert.NoError(t, err)
	m.AssertExpectations(t)
}

// キー未設定のプロバイダは設定エラーを返すだけで落ちない
func TestSendAdminNotification_APIKeyMissing(t *testing.T) {
	d := newDispatcher(mailer.NewResendMailer(""))
	order, items := sampleOrder()

	_, err := d.SendAdminNotification(context.Background(), order, items)

	assert.ErrorIs(t, err, mailer.ErrAPIKeyMissing)
}

// 片方が失敗してももう片方は送り切る
func TestDispatchOrderEmails_SettleAll(t *testing.T) {
	m := new(MailerMock)
	d := newDispatcher(m)
	order, items := sampleOrder()

	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0] == testAdminTo
	})).Return("", errors.New("smtp down"))
	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0] == order.CustomerEmail
	})).Return("cus_1", nil)

	res := d.DispatchOrderEmails(context.Background(), order, items)

	assert.False(t, res.Admin.Success)
	assert.Equal(t, "smtp down", res.Admin.Error)
	assert.True(t, res.Customer.Success)
	assert.Equal(t, "cus_1", res.Customer.ID)
	m.AssertNumberOfCalls(t, "Send", 2)
}

func TestDispatchOrderEmails_BothSucceed(t *testing.T) {
	m := new(MailerMock)
	d := newDispatcher(m)
	order, items := sampleOrder()

	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0] == testAdminTo
	})).Return("adm_1", nil)
	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0] == order.CustomerEmail
	})).Return("cus_1", nil)

	res := d.DispatchOrderEmails(context.Background(), order, items)

	assert.True(t, res.Admin.Success)
	assert.True(t, res.Customer.Success)
	assert.Empty(t, res.Admin.Error)
	assert.Empty(t, res.Customer.Error)
}
