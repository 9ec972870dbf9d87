package config // package config loads application configuration from environment variables

import (
	"os"
	"path/filepath"
	"strconv"

	"hotel-console/internal/utils"
)

// Config holds all runtime configuration values.  Every field has a
// working default so the tool starts with no environment at all;
// a .env file, when present, is loaded by main before this runs.
type Config struct {
	DataDir    string // directory holding the JSON collections
	LogLevel   string // zerolog level name (debug, info, warn, error)
	LogPretty  bool   // console-formatted logs instead of JSON
	BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration from environment variables, applying
// defaults for anything unset.
func Load() Config {
	return Config{
		DataDir:    getEnv("HMS_DATA_DIR", "data"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogPretty:  getEnv("LOG_PRETTY", "true") == "true",
		BcryptCost: utils.NormalizeCost(getInt("BCRYPT_COST", 0)),
	}
}

// CollectionPath resolves the backing file for one entity
// collection, e.g. CollectionPath("users") -> "<DataDir>/users.json".
func (c Config) CollectionPath(name string) string {
	return filepath.Join(c.DataDir, name+".json")
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
