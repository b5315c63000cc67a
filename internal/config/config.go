package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	MockAPI    MockAPI    `yaml:"mock_api"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

type Storage struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"vessel_bookings.json"`
}

// MockAPI tunes the fabricated network behavior of the data layer.
type MockAPI struct {
	Latency       time.Duration `yaml:"latency" env-default:"800ms"`
	CreateLatency time.Duration `yaml:"create_latency" env-default:"1200ms"`
	FailureRate   float64       `yaml:"failure_rate" env-default:"0.05"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
