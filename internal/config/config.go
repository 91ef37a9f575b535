package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	CatalogFile   string `env:"CATALOG_FILE"`

	JWTSecret string `env:"JWT_SECRET"`

	HCloudToken     string        `env:"HCLOUD_TOKEN"`
	HCloudEndpoint  string        `env:"HCLOUD_ENDPOINT"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"2m"`

	PricingCacheTTL time.Duration `env:"PRICING_CACHE_TTL" envDefault:"5s"`
	DefaultCurrency string        `env:"DEFAULT_CURRENCY"  envDefault:"EUR"`

	ReconcileInterval   time.Duration `env:"RECONCILE_INTERVAL"    envDefault:"15s"`
	ReconcileWorkers    uint          `env:"RECONCILE_WORKERS"     envDefault:"5"`
	ReconcileBatch      uint          `env:"RECONCILE_BATCH"       envDefault:"50"`
	OrphanSweepInterval time.Duration `env:"ORPHAN_SWEEP_INTERVAL" envDefault:"10m"`

	ProvisionRatePerMinute int      `env:"PROVISION_RATE_PER_MINUTE" envDefault:"5"`
	CORSOrigins            []string `env:"CORS_ORIGINS"              envSeparator:","`
}

// LoadConfig читает конфигурацию из окружения (и файла .env, если он есть) и флагов командной строки args.
// Значения окружения приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseDSN == "":
		return errors.New("database DSN is not set")
	case c.JWTSecret == "":
		return errors.New("jwt secret is not set")
	case c.HCloudToken == "":
		return errors.New("hcloud token is not set")
	case c.ProviderTimeout <= 0:
		return errors.New("provider timeout must be positive")
	case c.ReconcileInterval <= 0:
		return errors.New("reconcile interval must be positive")
	case c.OrphanSweepInterval < 0:
		return errors.New("orphan sweep interval must not be negative")
	}
	return nil
}

func loadFlags(flagConfig *Config, args []string) error {
	flags := flag.NewFlagSet("vps", flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.CatalogFile, "c", "", "Plans catalog yaml file, built-in catalog if empty")
	flags.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	flags.StringVar(&flagConfig.HCloudToken, "t", "", "Hetzner Cloud API token")

	return flags.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.CatalogFile = defaultIfBlank(envConfig.CatalogFile, flagsConfig.CatalogFile)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	conf.HCloudToken = defaultIfBlank(envConfig.HCloudToken, flagsConfig.HCloudToken)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
