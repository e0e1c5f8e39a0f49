package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP        HTTP
	Logger      Logger
	Postgres    Postgres
	Kafka       Kafka
	MercadoPago MercadoPago
	OrderStatus OrderStatus
	Jobs        Jobs
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
	// AdminToken protects the admin routes; requests must send it as a bearer token.
	AdminToken string `env:"HTTP_ADMIN_TOKEN" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	GroupID            string   `env:"KAFKA_GROUP_ID" envDefault:"mercadopago"`
	PaymentsTopic      string   `env:"MP_KAFKA_PAYMENTS_TOPIC" envDefault:"mercadopago.payments"`
	OrderUpdatedTopic  string   `env:"KAFKA_ORDER_UPDATED_TOPIC" envDefault:"order.updated"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"notifications"`
	SupportEmail       string   `env:"MP_SUPPORT_EMAIL" envDefault:""`
}

// MercadoPago holds the provider endpoint and the default-scope store settings. Values set in
// the store database take precedence over these.
type MercadoPago struct {
	BaseURL         string        `env:"MP_BASE_URL" envDefault:"https://api.mercadopago.com"`
	IntegrationType string        `env:"MP_INTEGRATION_TYPE" envDefault:"magento"`
	ModuleVersion   string        `env:"MP_MODULE_VERSION" envDefault:"1.0.0"`
	Timeout         time.Duration `env:"MP_TIMEOUT" envDefault:"10s"`
	RetryAttempts   int           `env:"MP_RETRY_ATTEMPTS" envDefault:"3"`

	AccessToken  string `env:"MP_ACCESS_TOKEN" envDefault:""`
	PublicKey    string `env:"MP_PUBLIC_KEY" envDefault:""`
	ClientID     string `env:"MP_CLIENT_ID" envDefault:""`
	ClientSecret string `env:"MP_CLIENT_SECRET" envDefault:""`
	SandboxMode  string `env:"MP_SANDBOX_MODE" envDefault:"0"`
}

// OrderStatus is the default order status per provider status.
type OrderStatus struct {
	Approved    string `env:"MP_ORDER_STATUS_APPROVED" envDefault:"processing"`
	Refunded    string `env:"MP_ORDER_STATUS_REFUNDED" envDefault:"closed"`
	InMediation string `env:"MP_ORDER_STATUS_IN_MEDIATION" envDefault:"holded"`
	Cancelled   string `env:"MP_ORDER_STATUS_CANCELLED" envDefault:"canceled"`
	Rejected    string `env:"MP_ORDER_STATUS_REJECTED" envDefault:"canceled"`
	Chargeback  string `env:"MP_ORDER_STATUS_CHARGEBACK" envDefault:"holded"`
	InProcess   string `env:"MP_ORDER_STATUS_IN_PROCESS" envDefault:"pending"`
}

type Jobs struct {
	CredentialsCheckInterval time.Duration `env:"MP_CREDENTIALS_CHECK_INTERVAL" envDefault:"1h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
