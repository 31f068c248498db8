package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Backend REST (PostgREST). Los tres son obligatorios.
	BackendURL       string `env:"BACKEND_URL,required,notEmpty"`
	BackendAPIKey    string `env:"BACKEND_API_KEY,required,notEmpty"`
	BackendAuthToken string `env:"BACKEND_AUTH_TOKEN,required,notEmpty"`

	Port        string        `env:"PORT" envDefault:"8080"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	CacheStaleTime time.Duration `env:"CACHE_STALE_TIME" envDefault:"5m"`
	CacheGCTime    time.Duration `env:"CACHE_GC_TIME" envDefault:"10m"`
	CacheRetry     int           `env:"CACHE_RETRY" envDefault:"2"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogOutput string `env:"LOG_OUTPUT" envDefault:"stdout"`
	LogFile   string `env:"LOG_FILE" envDefault:"logs/app.log"`
}

// LoadConfig carga la configuración desde el entorno.
// Falla si falta alguno de los valores del backend.
func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return parse(env.Options{})
}

// LoadFrom parsea la configuración desde un mapa (tests y herramientas).
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	cfg.BackendAPIKey = strings.TrimSpace(cfg.BackendAPIKey)
	cfg.BackendAuthToken = strings.TrimSpace(cfg.BackendAuthToken)

	if cfg.CacheRetry < 0 {
		return nil, fmt.Errorf("invalid configuration: CACHE_RETRY must be >= 0, got %d", cfg.CacheRetry)
	}
	return &cfg, nil
}
