package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Catalog  Catalog  `envPrefix:"CATALOG_"`
	Payment  Payment  `envPrefix:"PAYMENT_"`
	Download Download `envPrefix:"DOWNLOAD_"`
}

type Catalog struct {
	// URL takes precedence; File is the local fallback for dev runs.
	URL          string        `env:"URL"`
	File         string        `env:"FILE" envDefault:"web/fileData.json"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
}

type Payment struct {
	SimDelay   time.Duration `env:"SIM_DELAY" envDefault:"2s"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"5m"`
}

type Download struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.example.com/download"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
