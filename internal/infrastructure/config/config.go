package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Image     ImageConfig
	Upload    UploadConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey      string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	Issuer         string        `envconfig:"JWT_ISSUER" default:"asset-store"`
}

type StorageDriver string

const (
	DriverS3    StorageDriver = "s3"
	DriverMinio StorageDriver = "minio"
)

type StorageConfig struct {
	Driver          StorageDriver     `envconfig:"STORAGE_DRIVER" default:"s3"`
	Endpoint        string            `envconfig:"STORAGE_ENDPOINT"`
	Region          string            `envconfig:"STORAGE_REGION" default:"us-east-1"`
	Bucket          string            `envconfig:"STORAGE_BUCKET" required:"true"`
	AccessKeyID     string            `envconfig:"STORAGE_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string            `envconfig:"STORAGE_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool              `envconfig:"STORAGE_USE_PATH_STYLE" default:"false"`
	CDNURL          string            `envconfig:"STORAGE_CDN_URL"`
	Params          map[string]string `envconfig:"STORAGE_PARAMS"`
}

type UploadConfig struct {
	MaxSize int64 `envconfig:"UPLOAD_MAX_SIZE" default:"20971520"`
}

type LogConfig struct {
	Level  string   `envconfig:"LOG_LEVEL" default:"info"`
	Format string   `envconfig:"LOG_FORMAT" default:"json"`
	Output []string `envconfig:"LOG_OUTPUT" default:"stderr"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"30"`
}

// Load reads an optional .env file, then the environment, then the image
// config file when IMAGE_CONFIG_FILE is set.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Image.load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadStorage reads only what a storage client needs.
func LoadStorage() (*StorageConfig, *ImageConfig, error) {
	if err := loadDotenv(); err != nil {
		return nil, nil, err
	}

	var storage StorageConfig
	if err := envconfig.Process("", &storage); err != nil {
		return nil, nil, fmt.Errorf("loading storage config: %w", err)
	}

	image, err := LoadImage()
	if err != nil {
		return nil, nil, err
	}

	return &storage, image, nil
}

// LoadImage reads the variant sizes and encoder options.
func LoadImage() (*ImageConfig, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	var image ImageConfig
	if err := envconfig.Process("", &image); err != nil {
		return nil, fmt.Errorf("loading image config: %w", err)
	}
	if err := image.load(); err != nil {
		return nil, err
	}
	return &image, nil
}

func LoadJWT() (*JWTConfig, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	var jwt JWTConfig
	if err := envconfig.Process("", &jwt); err != nil {
		return nil, fmt.Errorf("loading jwt config: %w", err)
	}
	return &jwt, nil
}

func loadDotenv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
