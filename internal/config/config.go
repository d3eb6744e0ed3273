package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server and worker configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	Port      string   `env:"PORT" envDefault:"5000"`
	Folder    string   `env:"FOLDER_PATH" envDefault:"/tmp/files_manager"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	GRPC      GRPC     `envPrefix:"GRPC_"`
	Database  Database `envPrefix:"DB_"`
	Redis     Redis    `envPrefix:"REDIS_"`
	Storage   Storage  `envPrefix:"STORAGE_"`
	Minio     Minio    `envPrefix:"MINIO_"`
	Session   Session  `envPrefix:"SESSION_"`
	Catalog   Catalog  `envPrefix:"CATALOG_"`
	Queue     Queue    `envPrefix:"QUEUE_"`
	Worker    Worker   `envPrefix:"WORKER_"`
}

// HTTP contains REST server parameters.
type HTTP struct {
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// GRPC contains health endpoint parameters.
type GRPC struct {
	Port           string        `env:"PORT" envDefault:"50051"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" envDefault:"10s"`
}

// Database contains metadata store connection parameters.
type Database struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"DATABASE" envDefault:"files_manager"`
	User     string `env:"USER" envDefault:"files_manager"`
	Password string `env:"PASSWORD" envDefault:"files_manager"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// DSN builds a postgres connection URL.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Redis contains cache and queue connection parameters.
type Redis struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Addr returns the host:port pair of the redis server.
func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Storage selects the blob store backend: "fs" or "minio".
type Storage struct {
	Backend string `env:"BACKEND" envDefault:"fs"`
}

// Minio contains object storage parameters.
type Minio struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"files-manager-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"files-manager-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"files-manager"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Session contains session token parameters.
type Session struct {
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

// Catalog contains file hierarchy policy switches.
type Catalog struct {
	RequireParentOwnership bool `env:"REQUIRE_PARENT_OWNERSHIP" envDefault:"false"`
}

// Queue contains thumbnail job queue parameters.
type Queue struct {
	Name        string        `env:"NAME" envDefault:"fileQueue"`
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"1"`
	PollTimeout time.Duration `env:"POLL_TIMEOUT" envDefault:"5s"`
}

// Worker contains thumbnail worker parameters.
// ID names the worker's processing list and must stay the same across restarts.
type Worker struct {
	Concurrency int    `env:"CONCURRENCY" envDefault:"1"`
	ID          string `env:"ID"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Storage.Backend != "fs" && cfg.Storage.Backend != "minio" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Worker.Concurrency < 1 {
		cfg.Worker.Concurrency = 1
	}
	if cfg.Worker.ID == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve worker id: %w", err)
		}
		cfg.Worker.ID = host
	}
	if cfg.Queue.MaxAttempts < 1 {
		cfg.Queue.MaxAttempts = 1
	}

	return &cfg, nil
}
