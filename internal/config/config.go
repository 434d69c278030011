package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Профили окружения
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// ErrMissingAuthSecret: сервер не может стартовать без секрета подписи токенов.
var ErrMissingAuthSecret = errors.New("AUTH_SECRET is required")

type Config struct {
	// Server-side settings
	DatabaseDSN    string        `env:"DATABASE_URI"`
	AuthSecret     string        `env:"AUTH_SECRET"`
	TokenTTL       time.Duration `env:"AUTH_TOKEN_TTL"`
	BcryptCost     int           `env:"BCRYPT_COST"`
	Environment    string        `env:"APP_ENV"`
	CORSOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	PublicSiteURL  string        `env:"PUBLIC_SITE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	UploadDir      string        `env:"UPLOAD_DIR"`
	UploadMaxMB    int           `env:"UPLOAD_MAX_MB"`
	MongoURI       string        `env:"MONGO_URI"`
	MongoDatabase  string        `env:"MONGO_DB"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFile        string        `env:"LOG_FILE"`
	InquiryPerMin  int           `env:"INQUIRY_RATE_PER_MIN"`
	OTLPEndpoint   string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL     string        `env:"-"`
	ClientDBPath  string        `env:"CLIENT_DB_PATH"`
	CacheBackend  string        `env:"CACHE_BACKEND"`
	RedisURL      string        `env:"REDIS_URL"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT"`
	Version       bool          `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к файлу sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.Environment, "env", cfg.Environment, "профиль окружения: dev | prod")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог для загруженных изображений")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the Rent&Co server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client cache SQLite DB")
	flag.StringVar(&cfg.CacheBackend, "cache", cfg.CacheBackend, "client cache backend: memory | sqlite | redis")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	if cfg.Environment != EnvProd {
		cfg.Environment = EnvDev
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 10
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "rentco.db"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = 5
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "rentco"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.InquiryPerMin <= 0 {
		cfg.InquiryPerMin = 5
	}

	// BaseURL: только "address:port" (без схемы и пути), иначе значение по умолчанию
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
	if cfg.PublicSiteURL == "" {
		cfg.PublicSiteURL = cfg.ServerURL
	}
	cfg.PublicSiteURL = strings.TrimRight(cfg.PublicSiteURL, "/")

	// CORS: dev разрешает локальные фронтенды, prod: только публичный сайт
	if len(cfg.CORSOrigins) == 0 {
		if cfg.Environment == EnvProd {
			cfg.CORSOrigins = []string{cfg.PublicSiteURL}
		} else {
			cfg.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
		}
	}

	// Fill client defaults if empty
	switch cfg.CacheBackend {
	case "memory", "sqlite", "redis":
	default:
		cfg.CacheBackend = "sqlite"
	}
	if cfg.ClientTimeout <= 0 {
		cfg.ClientTimeout = 10 * time.Second
	}
	if cfg.ClientDBPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.ClientDBPath = filepath.Join(dir, "RentCo", "cache.sqlite")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379/0"
	}
}

// ValidateServer проверяет настройки, без которых сервер не запускается.
func (cfg *Config) ValidateServer() error {
	if strings.TrimSpace(cfg.AuthSecret) == "" {
		return ErrMissingAuthSecret
	}
	return nil
}

// IsPostgres сообщает, указывает ли DSN на PostgreSQL (иначе: файл SQLite).
func (cfg *Config) IsPostgres() bool {
	dsn := strings.ToLower(cfg.DatabaseDSN)
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
