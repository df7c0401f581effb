package config

import "os"

// Get returns the environment value for key, or fallback when unset or
// empty. Env files are loaded by the commands' composition roots
// (godotenv), not here.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
