package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oggyb/beem-sms/sms"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host      string
		Port      string
		RateLimit float64
		RateBurst int
	}

	Log struct {
		Level  string
		Format string
	}

	DB struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Beem struct {
		APIKey        string
		SecretKey     string
		BaseURL       string
		Timeout       time.Duration
		MaxRetries    int
		Backoff       time.Duration
		DefaultSource string
		BatchSize     int
		BatchPause    time.Duration
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "beem-sms")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")
	cfg.API.RateLimit = getFloat("API_RATE_LIMIT", 10)
	cfg.API.RateBurst = getInt("API_RATE_BURST", 20)

	// Logging
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "db")
	cfg.DB.Port = getInt("DB_PORT", 5432)
	cfg.DB.User = getEnv("DB_USER", "root")
	cfg.DB.Password = getEnv("DB_PASSWORD", "123456")
	cfg.DB.Name = getEnv("DB_NAME", "db_beem_sms")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// Beem gateway
	cfg.Beem.APIKey = getEnv("BEEM_API_KEY", "")
	cfg.Beem.SecretKey = getEnv("BEEM_SECRET_KEY", "")
	cfg.Beem.BaseURL = getEnv("BEEM_BASE_URL", sms.DefaultBaseURL)
	cfg.Beem.Timeout = getDuration("BEEM_TIMEOUT", sms.DefaultTimeout)
	cfg.Beem.MaxRetries = getInt("BEEM_MAX_RETRIES", sms.DefaultMaxRetries)
	cfg.Beem.Backoff = getDuration("BEEM_BACKOFF", sms.DefaultBackoff)
	cfg.Beem.DefaultSource = getEnv("BEEM_SOURCE_ADDR", "INFO")
	cfg.Beem.BatchSize = getInt("BEEM_BATCH_SIZE", sms.DefaultBatchSize)
	cfg.Beem.BatchPause = getDuration("BEEM_BATCH_PAUSE", sms.DefaultBatchPause)

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}

// SMSOptions turns the Beem settings into client options.
func (c *Config) SMSOptions(log logrus.FieldLogger) []sms.Option {
	return []sms.Option{
		sms.WithBaseURL(c.Beem.BaseURL),
		sms.WithTimeout(c.Beem.Timeout),
		sms.WithMaxRetries(c.Beem.MaxRetries),
		sms.WithBackoff(c.Beem.Backoff),
		sms.WithBatchPause(c.Beem.BatchPause),
		sms.WithLogger(log),
	}
}

// Logger builds the application logger from the Log settings. An unknown
// level falls back to info; any format other than "json" is text.
func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(c.Log.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}
