package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
)

const EnvPrefix = "retailstore"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, used by tests and deploy tooling.
const (
	EnvAppEnv          = "RETAILSTORE_APP_ENV"
	EnvLogLevel        = "RETAILSTORE_LOG_LEVEL"
	EnvStoreName       = "RETAILSTORE_STORE_NAME"
	EnvSeed            = "RETAILSTORE_SEED"
	EnvMinReceivedDays = "RETAILSTORE_SEED_MIN_RECEIVED_DAYS"
	EnvMaxReceivedDays = "RETAILSTORE_SEED_MAX_RECEIVED_DAYS"
	EnvSimulateSales   = "RETAILSTORE_SEED_SIMULATE_SALES"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Seed  SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Seed.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RETAILSTORE_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"RETAILSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RETAILSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	Name string `envconfig:"RETAILSTORE_STORE_NAME" default:"Demo Retail Store"`
}

// SeedConfig controls the deterministic fixture generator.
// Seed 0 means derive a seed from the wall clock at startup.
type SeedConfig struct {
	Seed            int64 `envconfig:"RETAILSTORE_SEED" default:"0"`
	MinReceivedDays int   `envconfig:"RETAILSTORE_SEED_MIN_RECEIVED_DAYS" default:"8"`
	MaxReceivedDays int   `envconfig:"RETAILSTORE_SEED_MAX_RECEIVED_DAYS" default:"12"`
	SimulateSales   bool  `envconfig:"RETAILSTORE_SEED_SIMULATE_SALES" default:"true"`
}

func (s SeedConfig) validate() error {
	if s.MinReceivedDays < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "seed min received days must be at least 1")
	}
	if s.MaxReceivedDays < s.MinReceivedDays {
		return pkgerrors.New(pkgerrors.CodeValidation, "seed max received days must not be below the minimum").
			WithDetails(map[string]int{"min": s.MinReceivedDays, "max": s.MaxReceivedDays})
	}
	return nil
}
