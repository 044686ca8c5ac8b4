package main

import (
	"log/slog"
	"os"

	"papershop/internal/config"
	"papershop/internal/domain/model"
	"papershop/internal/handler"
	"papershop/internal/infra/db"
	infraRepo "papershop/internal/infra/repository"
	"papershop/internal/mailer"
	"papershop/internal/notification"
	"papershop/internal/server"
	"papershop/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Paper{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := db.SeedPapers(gormDB); err != nil {
		logger.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	paperRepo := infraRepo.NewPaperGormRepository(gormDB)
	tx := infraRepo.NewTxManagerGorm(gormDB)

	//メール送信。キー未設定でも起動し、送信時に設定エラーを返す
	resendMailer := mailer.NewResendMailer(cfg.ResendAPIKey)
	if cfg.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY is not set; order emails will fail until configured")
	}
	dispatcher := notification.NewDispatcher(resendMailer, cfg.MailFrom, cfg.AdminEmail, logger)

	//Usecase生成
	checkoutUC := usecase.NewCheckoutUsecase(tx, dispatcher, cfg.Shipping, logger)
	orderUC := usecase.NewOrderUsecase(tx)
	paperUC := usecase.NewPaperUsecase(paperRepo)

	//Handler生成
	paperH := handler.NewPaperHandler(paperUC)
	orderH := handler.NewOrderHandler(checkoutUC, orderUC)
	emailH := handler.NewEmailHandler(dispatcher)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, paperH, orderH, emailH)
	logger.Info("starting server", "addr", addr, "env", cfg.GoEnv)
	if err := e.Start(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
