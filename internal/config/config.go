package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetBackendURL() string
	GetStateDir() string
	GetShutdownTimeoutSeconds() int
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
}

// New loads .env if one is present and returns the environment-backed
// configuration. A missing .env is fine; real environment variables win.
func New() Config {
	_ = godotenv.Load()
	return mainConfig{}
}
