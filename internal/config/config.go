package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	defaultPort        = "8080"
	defaultGatewayPort = "8081"
)

// Init configures the process-wide logger. Safe to call more than once.
func Init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Port returns the listening port for the full server.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return defaultPort
}

// GatewayPort returns the listening port for the read-only gateway.
func GatewayPort() string {
	if p := os.Getenv("GATEWAY_PORT"); p != "" {
		return p
	}
	return defaultGatewayPort
}

// DatabasePath returns the storage override path. When set it is used
// unconditionally, skipping the candidate probe.
func DatabasePath() string {
	return os.Getenv("DATABASE_PATH")
}
