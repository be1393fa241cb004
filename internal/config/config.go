package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/turnera/internal/timezone"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string
	ServerPort string

	DBDriver string
	DBUrl    string

	EmailRequired bool
	EmailCheckMX  bool

	Timezone string

	RedisURL string

	AMQPUrl      string
	AMQPExchange string

	S3 S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load lê o ambiente. Um .env no diretório atual, se existir, é carregado
// antes sem sobrescrever variáveis já definidas.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBUrl:    getEnv("DATABASE_URL", "turnos.db"),

		EmailRequired: getBool("EMAIL_REQUIRED", false),
		EmailCheckMX:  getBool("EMAIL_CHECK_MX", false),

		Timezone: getEnv("CLINIC_TIMEZONE", timezone.DefaultTimezone),

		RedisURL: os.Getenv("REDIS_URL"),

		AMQPUrl:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "turnera.events"),

		S3: S3Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if !timezone.IsValid(cfg.Timezone) {
		return nil, fmt.Errorf("invalid CLINIC_TIMEZONE %q", cfg.Timezone)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
