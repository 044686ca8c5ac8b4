package handler

import (
	"net/http"

	"papershop/internal/domain/model"
	"papershop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	checkout *usecase.CheckoutUsecase
	orders   *usecase.OrderUsecase
}

func NewOrderHandler(checkout *usecase.CheckoutUsecase, orders *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders}
}

// フロントのチェックアウト画面が送ってくる形に合わせる
type CheckoutRequest struct {
	CustomerInfo struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		City     string `json:"city"`
	} `json:"customerInfo"`
	PaymentMethod string           `json:"paymentMethod"`
	Items         []model.CartItem `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")

	g.POST("", h.create)
	g.GET("/:orderNumber", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkout.Checkout(c.Request().Context(), usecase.CheckoutInput{
		CustomerName:    req.CustomerInfo.FullName,
		CustomerEmail:   req.CustomerInfo.Email,
		CustomerPhone:   req.CustomerInfo.Phone,
		CustomerAddress: req.CustomerInfo.Address,
		CustomerCity:    req.CustomerInfo.City,
		PaymentMethod:   req.PaymentMethod,
		Items:           req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.orders.GetOrderByNumber(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
