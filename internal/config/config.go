package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Backend   BackendConfig   `yaml:"backend"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Form      FormConfig      `yaml:"form"      validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"motbooker"    validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// BackendConfig описывает удаленный сервис бронирований и оплат.
type BackendConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"BACKEND_BASE_URL"       env-default:"http://localhost:5000" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout"        env:"BACKEND_TIMEOUT"        env-default:"120s"                  validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts" env:"BACKEND_RETRY_ATTEMPTS" env-default:"3"                     validate:"min=1,max=10"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"BACKEND_RETRY_DELAY"    env-default:"300ms"                 validate:"gt=0"`
	RetryBackoff  float64       `yaml:"retry_backoff"  env:"BACKEND_RETRY_BACKOFF"  env-default:"2"                     validate:"gte=1"`
}

func (b BackendConfig) RetryStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: b.RetryAttempts,
		Delay:    b.RetryDelay,
		Backoff:  b.RetryBackoff,
	}
}

type RedisConfig struct {
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"          env-default:"localhost:6379" validate:"required"`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"      env-default:""`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"              validate:"min=0"`
	PoolSize     int           `yaml:"pool_size"     env:"REDIS_POOL_SIZE"     env-default:"10"             validate:"min=1"`
	DialTimeout  time.Duration `yaml:"dial_timeout"  env:"REDIS_DIAL_TIMEOUT"  env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"REDIS_READ_TIMEOUT"  env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
}

// FormConfig задает время жизни кэша и сессий публичной формы.
type FormConfig struct {
	DisabledDatesTTL time.Duration `yaml:"disabled_dates_ttl" env:"FORM_DISABLED_DATES_TTL" env-default:"10m" validate:"gt=0"`
	SessionTTL       time.Duration `yaml:"session_ttl"        env:"FORM_SESSION_TTL"        env-default:"2h"  validate:"gt=0"`
	SessionCookie    string        `yaml:"session_cookie"     env:"FORM_SESSION_COOKIE"     env-default:"mot_form_session" validate:"required"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// LoadDotEnv подгружает .env, если он есть. Уже заданные переменные
// окружения не перезаписываются.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

const defaultConfigPath = "config/config.yaml"

// Load читает YAML-файл по пути path. Переменные окружения
// перекрывают значения из файла.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenvport.LoadPath(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad берет путь из --config или CONFIG_PATH, по умолчанию config/config.yaml.
func MustLoad() *Config {
	if err := LoadDotEnv(); err != nil {
		panic(err.Error())
	}
	if os.Getenv("CONFIG_PATH") == "" {
		_ = os.Setenv("CONFIG_PATH", defaultConfigPath)
	}

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
