package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Address         string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// NewServerConfig parses args (without the program name), then lets
// environment variables override the flag values.
func NewServerConfig(args []string) (*ServerConfig, error) {
	config := &ServerConfig{
		Address:         "localhost:8080",
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	address := fs.String("a", config.Address, "address")
	logLevel := fs.String("l", config.LogLevel, "log level")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout/time.Second), "graceful shutdown timeout in seconds")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	envVars := map[string]*string{
		"ADDRESS":   address,
		"LOG_LEVEL": logLevel,
	}

	for envVar, flag := range envVars {
		if envValue := os.Getenv(envVar); envValue != "" {
			*flag = envValue
		}
	}

	if envTimeout := os.Getenv("SHUTDOWN_TIMEOUT"); envTimeout != "" {
		timeout, err := strconv.Atoi(envTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", envTimeout, err)
		}
		*shutdownTimeout = timeout
	}
	if *shutdownTimeout < 0 {
		return nil, fmt.Errorf("shutdown timeout must not be negative, got %d", *shutdownTimeout)
	}

	config.Address = *address
	config.LogLevel = *logLevel
	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second

	return config, nil
}
