package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Logger     Logger
	Metrics    Metrics
	Platform   Platform
	Kafka      Kafka
	Centrifuge Centrifuge
	Storage    Storage
	User       User
	Dialog     Dialog
}

type Service struct {
	Port string `env:"DIALOG_SERVICE_PORT" env-default:"8080"`
	Name string `env:"DIALOG_SERVICE_NAME" env-default:"dialog-service"`
}

type Postgres struct {
	User     string `env:"DIALOG_SERVICE_POSTGRES_USER"`
	Password string `env:"DIALOG_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"DIALOG_SERVICE_POSTGRES_DB"`
	Host     string `env:"DIALOG_SERVICE_POSTGRES_HOST"`
	Port     string `env:"DIALOG_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	UserTopic         string `env:"KAFKA_USER_TOPIC" env-default:"user_updates"`
	NotificationTopic string `env:"KAFKA_NOTIFICATION_TOPIC" env-default:"notification_new_message"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Storage struct {
	BaseURL string        `env:"STORAGE_BASE_URL"`
	APIKey  string        `env:"STORAGE_API_KEY"`
	Bucket  string        `env:"STORAGE_DIALOG_BUCKET" env-default:"dialog-media"`
	Timeout time.Duration `env:"STORAGE_TIMEOUT" env-default:"30s"`
}

type User struct {
	Host string `env:"USER_SERVICE_HOST"`
	Port string `env:"USER_SERVICE_PORT"`
}

type Dialog struct {
	DailyLimit   int           `env:"DIALOG_DAILY_LIMIT" env-default:"3"`
	QuotaWindow  time.Duration `env:"DIALOG_QUOTA_WINDOW" env-default:"24h"`
	TypingTTL    time.Duration `env:"DIALOG_TYPING_TTL" env-default:"2s"`
	ExpiryWindow time.Duration `env:"DIALOG_EXPIRY_WINDOW" env-default:"24h"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
