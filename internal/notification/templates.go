package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"papershop/internal/domain/model"
)

// メール本文に埋める注文スナップショット。
type orderEmailData struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	PaymentMethod   string
	Subtotal        int64
	DeliveryLabel   string
	TotalAmount     int64
	ItemLines       []string
}

func newOrderEmailData(o model.Order, items []model.OrderItem) orderEmailData {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("• %s - %s (%s %s) - ৳%d", it.ItemCode, it.Subject, it.Board, it.Level, it.Price))
	}

	deliveryLabel := "Free"
	if o.DeliveryCharge != 0 {
		deliveryLabel = fmt.Sprintf("৳%d", o.DeliveryCharge)
	}

	return orderEmailData{
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerCity:    o.CustomerCity,
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        o.Subtotal,
		DeliveryLabel:   deliveryLabel,
		TotalAmount:     o.TotalAmount,
		ItemLines:       lines,
	}
}

var adminTemplate = template.Must(template.New("admin").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #3b82f6, #8b5cf6); padding: 20px; border-radius: 10px; margin-bottom: 20px;">
    <h1 style="color: white; margin: 0; font-size: 24px;">🎉 New Order Received!</h1>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #1e293b; margin-top: 0;">Order Details</h2>
    <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
    <p><strong>Total Amount:</strong> ৳{{.TotalAmount}}</p>
    <p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #1e293b; margin-top: 0;">Customer Information</h2>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
    <p><strong>Address:</strong> {{.CustomerAddress}}, {{.CustomerCity}}</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #1e293b; margin-top: 0;">Order Items</h2>
    <div style="font-family: monospace; white-space: pre-line; background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #3b82f6;">{{range .ItemLines}}{{.}}
{{end}}</div>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px;">
    <h2 style="color: #1e293b; margin-top: 0;">Order Summary</h2>
    <p><strong>Subtotal:</strong> ৳{{.Subtotal}}</p>
    <p><strong>Delivery Charge:</strong> {{.DeliveryLabel}}</p>
    <p style="font-size: 18px; color: #3b82f6;"><strong>Total: ৳{{.TotalAmount}}</strong></p>
  </div>
</div>`))

var customerTemplate = template.Must(template.New("customer").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #10b981, #3b82f6); padding: 20px; border-radius: 10px; margin-bottom: 20px;">
    <h1 style="color: white; margin: 0; font-size: 24px;">✅ Order Confirmed!</h1>
    <p style="color: white; margin: 10px 0 0 0;">Thank you for your order, {{.CustomerName}}!</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #1e293b; margin-top: 0;">Order Details</h2>
    <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
    <p><strong>Total Amount:</strong> ৳{{.TotalAmount}}</p>
    <p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #1e293b; margin-top: 0;">Your Items</h2>
    <div style="font-family: monospace; white-space: pre-line; background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #10b981;">{{range .ItemLines}}{{.}}
{{end}}</div>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h2 style="color: #1e293b; margin-top: 0;">Delivery Information</h2>
    <p><strong>Address:</strong> {{.CustomerAddress}}, {{.CustomerCity}}</p>
    <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
    <p style="color: #059669; font-weight: bold;">📦 Your order will be delivered within 2-3 business days</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px;">
    <h2 style="color: #1e293b; margin-top: 0;">Order Summary</h2>
    <p><strong>Subtotal:</strong> ৳{{.Subtotal}}</p>
    <p><strong>Delivery Charge:</strong> {{.DeliveryLabel}}</p>
    <p style="font-size: 18px; color: #10b981;"><strong>Total: ৳{{.TotalAmount}}</strong></p>
  </div>
</div>`))

func renderTemplate(t *template.Template, data orderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
