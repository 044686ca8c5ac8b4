package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート

	ResendAPIKey string // メール送信キー。無くても起動はする（送信時に設定エラー扱い）
	MailFrom     string // 差出人
	AdminEmail   string // 新規注文の通知先

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORS、カンマ区切りで複数可）

	Shipping ShippingPolicy
}

// ShippingPolicy は配送料の計算ルール。しきい値も対象都市も環境変数で差し替える。
type ShippingPolicy struct {
	FreeShippingThreshold int64    // これを超えたら送料無料
	FreeDeliveryZones     []string // 無料配送の都市
	DeliveryFlatRate      int64    // それ以外の一律送料
}

// ChargeFor は配送料を決める。しきい値超過か対象都市なら0、それ以外は一律。
func (p ShippingPolicy) ChargeFor(city string, subtotal int64) int64 {
	if subtotal > p.FreeShippingThreshold {
		return 0
	}
	city = strings.TrimSpace(city)
	for _, z := range p.FreeDeliveryZones {
		if strings.EqualFold(city, z) {
			return 0
		}
	}
	return p.DeliveryFlatRate
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getenv("MAIL_FROM", "EduMaterials <onboarding@resend.dev>"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: getenv("FE_URL", "http://localhost:5000,http://localhost:3000"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.AdminEmail == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	//DATABASE_URLが無いときだけ個別のPOSTGRES_*を要求する
	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}
		pgPort, err := mustAtoi("POSTGRES_PORT")
		if err != nil {
			return Config{}, err
		}
		cfg.PostgresPort = pgPort
	}

	shipping, err := loadShippingPolicy()
	if err != nil {
		return Config{}, err
	}
	cfg.Shipping = shipping

	return cfg, nil
}

func loadShippingPolicy() (ShippingPolicy, error) {
	p := ShippingPolicy{
		FreeShippingThreshold: 1000,
		FreeDeliveryZones:     []string{"Chittagong"},
		DeliveryFlatRate:      50,
	}

	if v := os.Getenv("FREE_SHIPPING_THRESHOLD"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ShippingPolicy{}, fmt.Errorf("FREE_SHIPPING_THRESHOLD must be number: %w", err)
		}
		p.FreeShippingThreshold = n
	}
	if v := os.Getenv("DELIVERY_FLAT_RATE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ShippingPolicy{}, fmt.Errorf("DELIVERY_FLAT_RATE must be number: %w", err)
		}
		p.DeliveryFlatRate = n
	}
	if v := os.Getenv("FREE_DELIVERY_ZONES"); v != "" {
		zones := []string{}
		for _, z := range strings.Split(v, ",") {
			if z = strings.TrimSpace(z); z != "" {
				zones = append(zones, z)
			}
		}
		p.FreeDeliveryZones = zones
	}

	return p, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
