package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	portEnvVar     = "PORT"
	appNameVar     = "APP_NAME"
	backendURLVar  = "BACKEND_URL"
	stateDirVar    = "STATE_DIR"
	logLevelVar    = "LOG_LEVEL"
	shutdownSecVar = "SHUTDOWN_TIMEOUT_SECONDS"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Portal Gate")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

// GetBackendURL returns the base URL of the retail backend REST API every
// portal call is made against.
func (EnvVars) GetBackendURL() string {
	return GetEnv(backendURLVar, "http://localhost:9090")
}

// GetStateDir returns the directory holding the persisted portal sessions.
func (EnvVars) GetStateDir() string {
	return GetEnv(stateDirVar, "./state")
}

func (EnvVars) GetShutdownTimeoutSeconds() int {
	raw := GetEnv(shutdownSecVar, "5")
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 5
	}
	return secs
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
