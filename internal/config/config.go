package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the defaults of the command line front-end. Flags
// always take precedence over these values.
type Config struct {
	DPI    int    // resolution used to rasterize the figure
	Driver string // display driver used to present the figure
}

// Load reads the configuration from the environment, after loading a
// .env file from the working directory if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv to look up each variable.
func FromEnv(getenv func(string) string) *Config {
	return &Config{
		DPI:    getEnvInt(getenv, "WELLE_DPI", 100),
		Driver: getEnv(getenv, "WELLE_DRIVER", "auto"),
	}
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	value := getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(getenv func(string) string, key string, defaultValue int) int {
	value, err := strconv.Atoi(getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
