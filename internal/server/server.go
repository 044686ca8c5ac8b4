package server

import (
	"net/http"
	"strings"

	"papershop/internal/config"
	"papershop/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New は全ルートとミドルウェアを設定したechoを返す。
func New(cfg config.Config, paperH *handler.PaperHandler, orderH *handler.OrderHandler, emailH *handler.EmailHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//受け付けるのはフロントのオリジンだけ
	var origins []string
	for _, o := range strings.Split(cfg.FEURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echomw.Recover())

	emailH.RegisterRoutes(e)
	paperH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)

	return e
}
