package handler

import (
	"net/http"
	"strconv"

	"papershop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /papers の公開API
type PaperHandler struct {
	uc *usecase.PaperUsecase
}

// DI
func NewPaperHandler(uc *usecase.PaperUsecase) *PaperHandler {
	return &PaperHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *PaperHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/papers", h.list)
	e.GET("/papers/:id", h.detail)
}

func (h *PaperHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListPapers(c.Request().Context(), usecase.ListPapersInput{
		Page:    page,
		Limit:   limit,
		Q:       c.QueryParam("q"),
		Board:   c.QueryParam("board"),
		Level:   c.QueryParam("level"),
		Subject: c.QueryParam("subject"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PaperHandler) detail(c echo.Context) error {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetPaperDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}
