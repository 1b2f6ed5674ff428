package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	Storage      string             `yaml:"storage" env:"STORAGE" env-default:"postgres"`
	HTTP         HTTPConfig         `yaml:"http"`
	Postgres     PostgresConfig     `yaml:"postgres"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Gateway      GatewayConfig      `yaml:"gateway"`
	Processor    ProcessorConfig    `yaml:"processor"`
	OrdersClient OrdersClientConfig `yaml:"orders_client"`
	Cache        CacheConfig        `yaml:"cache"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
	Republisher  RepublisherConfig  `yaml:"republisher"`
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type HTTPConfig struct {
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type PostgresConfig struct {
	Port           string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Host           string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	DbName         string `yaml:"db_name" env:"POSTGRES_DB"`
	User           string `yaml:"user" env:"POSTGRES_USER"`
	Pwd            string `yaml:"password" env:"POSTGRES_PASSWORD"`
	SslMode        string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	AutoMigrate    bool   `yaml:"auto_migrate" env:"POSTGRES_AUTO_MIGRATE"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

// DSN is the key/value form understood by lib/pq.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host, c.Port, c.User, c.DbName, c.Pwd, c.SslMode)
}

type KafkaConfig struct {
	// Empty BrokerList selects the in-process bus.
	BrokerList        []string      `yaml:"broker_list" env:"KAFKA_BROKERS" env-separator:","`
	OrderEventTopic   string        `yaml:"order_event_topic" env:"KAFKA_ORDER_EVENT_TOPIC" env-default:"order_created"`
	ConsumerGroup     string        `yaml:"consumer_group" env:"KAFKA_CONSUMER_GROUP" env-default:"payment_service"`
	PublishTimeout    time.Duration `yaml:"publish_timeout" env:"KAFKA_PUBLISH_TIMEOUT" env-default:"3s"`
	MaxAttempts       int           `yaml:"max_attempts" env:"KAFKA_MAX_ATTEMPTS" env-default:"5"`
	RetryInitial      time.Duration `yaml:"retry_initial" env:"KAFKA_RETRY_INITIAL" env-default:"200ms"`
	RetryMax          time.Duration `yaml:"retry_max" env:"KAFKA_RETRY_MAX" env-default:"5s"`
	ReconnectMaxDelay time.Duration `yaml:"reconnect_max_delay" env:"KAFKA_RECONNECT_MAX_DELAY" env-default:"30s"`
}

type GatewayConfig struct {
	Routes []RouteConfig `yaml:"routes"`
}

type RouteConfig struct {
	Prefix string `yaml:"prefix"`
	Target string `yaml:"target"`
}

type ProcessorConfig struct {
	SecretKey     string        `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	WebhookSecret string        `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
	Timeout       time.Duration `yaml:"timeout" env:"PROCESSOR_TIMEOUT" env-default:"10s"`
}

type OrdersClientConfig struct {
	BaseURL    string        `yaml:"base_url" env:"ORDERS_BASE_URL" env-default:"http://localhost:3002"`
	Timeout    time.Duration `yaml:"timeout" env:"ORDERS_CLIENT_TIMEOUT" env-default:"5s"`
	MaxRetries int           `yaml:"max_retries" env:"ORDERS_CLIENT_MAX_RETRIES" env-default:"2"`
}

type CacheConfig struct {
	Size int           `yaml:"size" env:"ORDER_CACHE_SIZE" env-default:"1024"`
	TTL  time.Duration `yaml:"ttl" env:"ORDER_CACHE_TTL" env-default:"10m"`
}

type TelemetryConfig struct {
	ServiceName  string `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type RepublisherConfig struct {
	OlderThan time.Duration `yaml:"older_than" env:"REPUBLISH_OLDER_THAN" env-default:"5m"`
}

// DefaultRoutes is the gateway table used when the config file lists none.
func DefaultRoutes() []RouteConfig {
	return []RouteConfig{
		{Prefix: "/products", Target: "http://localhost:3001"},
		{Prefix: "/orders", Target: "http://localhost:3002"},
		{Prefix: "/users", Target: "http://localhost:3003"},
		{Prefix: "/payments", Target: "http://localhost:3004"},
	}
}

func InitConfig() Config {
	configPath := getConfigPath()

	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// Load reads the YAML file at path, or only the environment when path is empty.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	switch cfg.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return Config{}, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	if len(cfg.Gateway.Routes) == 0 {
		cfg.Gateway.Routes = DefaultRoutes()
	}

	return cfg, nil
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
