package config

import (
	"net"
	"os"
	"strconv"
	"strings"
)

// Config holds the process configuration, read once at startup from the
// environment. It governs only how tool calls reach the dispatcher, never
// the tools' semantics.
type Config struct {
	// HTTP selects the streamable HTTP transport instead of stdio.
	HTTP bool

	// Host and Port form the listen address for the HTTP transport.
	Host string
	Port int

	// Path is the URL path serving MCP requests on the HTTP transport.
	Path string

	// LogLevel enables debug logging when set to "debug".
	LogLevel string
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() Config {
	return Config{
		HTTP:     envBool("MCP_HTTP", false),
		Host:     env("MCP_HOST", "127.0.0.1"),
		Port:     envInt("MCP_PORT", 8974),
		Path:     env("MCP_PATH", "/mcp"),
		LogLevel: env("IMAGE_MCP_LOG_LEVEL", ""),
	}
}

// Addr returns the host:port listen address for the HTTP transport.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
