package handler

import (
	"net/http"

	"papershop/internal/domain/model"
	"papershop/internal/notification"

	"github.com/labstack/echo/v4"
)

// /api/send-*-email。フロントから注文スナップショットを受けて送信だけ行う。
type EmailHandler struct {
	dispatcher *notification.Dispatcher
}

func NewEmailHandler(dispatcher *notification.Dispatcher) *EmailHandler {
	return &EmailHandler{dispatcher: dispatcher}
}

// 注文スナップショット。確定済みの値をそのまま運ぶだけで再計算はしない。
type OrderEmailRequest struct {
	OrderNumber     string                  `json:"orderNumber"`
	CustomerName    string                  `json:"customerName"`
	CustomerEmail   string                  `json:"customerEmail"`
	CustomerPhone   string                  `json:"customerPhone"`
	CustomerAddress string                  `json:"customerAddress"`
	CustomerCity    string                  `json:"customerCity"`
	PaymentMethod   string                  `json:"paymentMethod"`
	Subtotal        int64                   `json:"subtotal"`
	DeliveryCharge  int64                   `json:"deliveryCharge"`
	TotalAmount     int64                   `json:"totalAmount"`
	Items           []OrderEmailItemRequest `json:"items"`
}

type OrderEmailItemRequest struct {
	ItemCode  string `json:"item_code"`
	Subject   string `json:"subject"`
	Board     string `json:"board"`
	Level     string `json:"level"`
	Type      string `json:"type"`
	YearRange string `json:"year_range"`
	Component string `json:"component"`
	Price     int64  `json:"price"`
}

type EmailResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

type OrderEmailsResponse struct {
	Success bool                        `json:"success"`
	Results notification.DispatchResult `json:"results"`
	Message string                      `json:"message"`
}

func (h *EmailHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.health)

	g := e.Group("/api")
	g.POST("/send-admin-email", h.sendAdmin)
	g.POST("/send-customer-email", h.sendCustomer)
	g.POST("/send-order-emails", h.sendBoth)
}

func (h *EmailHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "papershop API server is running"})
}

func (h *EmailHandler) sendAdmin(c echo.Context) error {
	var req OrderEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, items := req.toSnapshot()
	id, err := h.dispatcher.SendAdminNotification(c.Request().Context(), order, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, EmailResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, EmailResponse{Success: true, Result: id})
}

func (h *EmailHandler) sendCustomer(c echo.Context) error {
	var req OrderEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, items := req.toSnapshot()
	id, err := h.dispatcher.SendCustomerConfirmation(c.Request().Context(), order, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, EmailResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, EmailResponse{Success: true, Result: id})
}

// 2通まとめて。両方の完了を待ち、宛先ごとの成否をそのまま返す
func (h *EmailHandler) sendBoth(c echo.Context) error {
	var req OrderEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, items := req.toSnapshot()
	res := h.dispatcher.DispatchOrderEmails(c.Request().Context(), order, items)

	return c.JSON(http.StatusOK, OrderEmailsResponse{
		Success: true,
		Results: res,
		Message: "email sending completed",
	})
}

func (r OrderEmailRequest) toSnapshot() (model.Order, []model.OrderItem) {
	order := model.Order{
		OrderNumber:     r.OrderNumber,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		CustomerCity:    r.CustomerCity,
		PaymentMethod:   r.PaymentMethod,
		Subtotal:        r.Subtotal,
		DeliveryCharge:  r.DeliveryCharge,
		TotalAmount:     r.TotalAmount,
	}

	items := make([]model.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.OrderItem{
			ItemCode:  it.ItemCode,
			Subject:   it.Subject,
			Board:     it.Board,
			Level:     it.Level,
			Kind:      it.Type,
			YearRange: it.YearRange,
			Component: it.Component,
			Price:     it.Price,
		})
	}

	return order, items
}
