package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type Config struct {
	Port              uint32        `ff:"long: port, short: p, default: 4444, usage: Port for the HTTP server"`
	CockroachURL      string        `ff:"long: cockroach-url, default: postgresql://root@127.0.0.1:26257/defaultdb?sslmode=disable, usage: URL for the CockroachDB database"`
	NATSURL           string        `ff:"long: nats-url, usage: URL for NATS; in-process pubsub when empty"`
	MinioEndpoint     string        `ff:"long: minio-endpoint, default: localhost:9000, usage: MinIO endpoint"`
	MinioAccessKey    string        `ff:"long: minio-access-key, default: minioadmin, usage: MinIO access key"`
	MinioSecretKey    string        `ff:"long: minio-secret-key, default: minioadmin, usage: MinIO secret key"`
	MinioSecure       bool          `ff:"long: minio-secure, default: false, usage: Use secure connection to MinIO"`
	MinioPublicURL    string        `ff:"long: minio-public-url, default: http://localhost:9000, usage: Public base URL of MinIO objects"`
	ResendAPIKey      string        `ff:"long: resend-api-key, usage: Resend API key; emails are only logged when empty"`
	MailFrom          string        `ff:"long: mail-from, default: parcelmate <noreply@parcelmate.local>, usage: Sender address of emails"`
	TokenKey          string        `ff:"long: token-key, default: supersecretkeyyoushouldnotcommit, usage: 32 bytes long key to verify identity tokens"`
	TokenTTL          time.Duration `ff:"long: token-ttl, default: 336h, usage: Lifetime of identity tokens"`
	BackgroundTimeout time.Duration `ff:"long: background-timeout, default: 15s, usage: Timeout for background work like emails"`
	CleanupTimeout    time.Duration `ff:"long: cleanup-timeout, default: 5s, usage: Timeout for background cleanup operations"`
	ShutdownTimeout   time.Duration `ff:"long: shutdown-timeout, default: 10s, usage: Time to wait for in-flight requests on shutdown"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	fs := ff.NewFlagSetFrom("parcelmate", &cfg)
	err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("PARCELMATE"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Println(ffhelp.Flags(fs))
		os.Exit(0)
	}

	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if len(cfg.TokenKey) != 32 {
		return errors.New("token key must be 32 bytes long")
	}

	if cfg.Port == 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}

	return nil
}
