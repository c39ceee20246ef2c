// Package config carga la configuración del proceso desde variables de
// entorno. Toda la config es opcional salvo la que exige el driver elegido.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// StoreDriver elige el backend: memory | mongo | postgres.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	MongoURI    string `env:"MONGO_URI"`
	MongoDB     string `env:"MONGO_DB" envDefault:"AAC"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	// OutcomesAPIURL es el endpoint público de outcomes del refugio
	// que consume el importer.
	OutcomesAPIURL string `env:"OUTCOMES_API_URL" envDefault:"https://data.austintexas.gov/resource/9t4d-g238.json"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"animal-shelter-dashboard"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverMongo:
		if strings.TrimSpace(cfg.MongoURI) == "" {
			return Config{}, fmt.Errorf("STORE_DRIVER=mongo requiere MONGO_URI")
		}
	case DriverPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return Config{}, fmt.Errorf("STORE_DRIVER=postgres requiere POSTGRES_DSN")
		}
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.StoreDriver)
	}

	return cfg, nil
}
