package profile

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvVar is the environment variable consulted by FromEnv.
const EnvVar = "DIOXIDE_PROFILE"

// FromEnv reads the active profile from the environment, loading .env first
// (or the given files). Call once at bootstrap:
//
//	active := profile.FromEnv()
//
// Falls back to Development when DIOXIDE_PROFILE is unset or empty.
func FromEnv(envFiles ...string) Profile {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	if v := os.Getenv(EnvVar); v != "" {
		return Parse(v)
	}
	return Development
}

// Env returns a raw env value, falling back to defaultVal.
func Env(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// EnvInt returns an int env value.
func EnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// EnvBool returns a bool env value.
func EnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
