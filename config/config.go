package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Server    ServerConfig
	LogLevel  string
	Store     StoreConfig
	RabbitMQ  RabbitMQConfig
	Mail      MailConfig
	WhatsApp  WhatsAppConfig
	Security  SecurityConfig
	Demo      DemoConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port int
}

type StoreConfig struct {
	Driver        string
	DatabaseURL   string
	Table         string
	MongoURL      string
	MongoDatabase string
}

// RabbitMQConfig with an empty URL means calls are placed in-process.
type RabbitMQConfig struct {
	URL string
}

func (c RabbitMQConfig) Enabled() bool { return c.URL != "" }

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c MailConfig) Enabled() bool { return c.Host != "" }

type WhatsAppConfig struct {
	AccessToken string
	PhoneID     string
}

func (c WhatsAppConfig) Enabled() bool { return c.AccessToken != "" && c.PhoneID != "" }

type SecurityConfig struct {
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int
}

type DemoConfig struct {
	ClientID      string
	ChurchName    string
	AdminEmail    string
	AdminPassword string
	Converts      int
	Workers       int
	Services      int
	BatchSize     int
	Seed          int64
	// ResetSchedule is a cron spec; empty disables the scheduled reset.
	ResetSchedule string
}

// SeedInput is the flat input the seeding core takes.
func (d DemoConfig) SeedInput() usecase.SeedDemoInput {
	return usecase.SeedDemoInput{
		ClientID:      d.ClientID,
		ChurchName:    d.ChurchName,
		AdminEmail:    d.AdminEmail,
		AdminPassword: d.AdminPassword,
		Converts:      d.Converts,
		Workers:       d.Workers,
		Services:      d.Services,
		BatchSize:     d.BatchSize,
		Seed:          d.Seed,
	}
}

type RateLimitConfig struct {
	// ResetPerMinute caps demo resets per client IP.
	ResetPerMinute int
}

type LoadOptions struct {
	EnvFile string
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("DB_TABLE", "demo_documents")
	v.SetDefault("MONGO_DATABASE", "evangelism_crm_demo")

	v.SetDefault("MAIL_PORT", 587)

	v.SetDefault("JWT_SECRET", "dev-only-change-me")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("DEMO_CLIENT_ID", "demo-church-lagos")
	v.SetDefault("DEMO_CHURCH_NAME", "Grace Evangelical Ministries")
	v.SetDefault("DEMO_ADMIN_EMAIL", "admin@graceevangelical.demo")
	v.SetDefault("DEMO_ADMIN_PASSWORD", "Demo@2025")
	v.SetDefault("DEMO_CONVERTS", 500)
	v.SetDefault("DEMO_WORKERS", 15)
	v.SetDefault("DEMO_SERVICES", 20)
	v.SetDefault("DEMO_BATCH_SIZE", usecase.DefaultBatchSize)
	v.SetDefault("DEMO_SEED", 0)
	v.SetDefault("DEMO_RESET_SCHEDULE", "")

	v.SetDefault("RESET_RATE_LIMIT", 5)

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}
		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Server:   ServerConfig{Port: v.GetInt("SERVER_PORT")},
		LogLevel: v.GetString("LOG_LEVEL"),
		Store: StoreConfig{
			Driver:        strings.ToLower(v.GetString("STORE_DRIVER")),
			DatabaseURL:   v.GetString("DATABASE_URL"),
			Table:         v.GetString("DB_TABLE"),
			MongoURL:      v.GetString("MONGO_URL"),
			MongoDatabase: v.GetString("MONGO_DATABASE"),
		},
		RabbitMQ: RabbitMQConfig{URL: v.GetString("RABBITMQ_URL")},
		Mail: MailConfig{
			Host:     v.GetString("MAIL_HOST"),
			Port:     v.GetInt("MAIL_PORT"),
			Username: v.GetString("MAIL_USER"),
			Password: v.GetString("MAIL_PASS"),
			From:     v.GetString("MAIL_FROM"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken: v.GetString("WHATSAPP_ACCESS_TOKEN"),
			PhoneID:     v.GetString("WHATSAPP_PHONE_ID"),
		},
		Security: SecurityConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			JWTTTL:     v.GetDuration("JWT_TTL"),
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		Demo: DemoConfig{
			ClientID:      v.GetString("DEMO_CLIENT_ID"),
			ChurchName:    v.GetString("DEMO_CHURCH_NAME"),
			AdminEmail:    v.GetString("DEMO_ADMIN_EMAIL"),
			AdminPassword: v.GetString("DEMO_ADMIN_PASSWORD"),
			Converts:      v.GetInt("DEMO_CONVERTS"),
			Workers:       v.GetInt("DEMO_WORKERS"),
			Services:      v.GetInt("DEMO_SERVICES"),
			BatchSize:     v.GetInt("DEMO_BATCH_SIZE"),
			Seed:          v.GetInt64("DEMO_SEED"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
		},
		RateLimit: RateLimitConfig{ResetPerMinute: v.GetInt("RESET_RATE_LIMIT")},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the process cannot start without. Seed sizes are
// checked by the seeding core itself.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case StoreMongo:
		if c.Store.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required for the mongo store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Security.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}
