package config

import "os"

// Getenv returns the environment value for key, or fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// JWTSecret returns the signing secret for the calculation routes.
func JWTSecret() []byte {
	return []byte(Getenv("JWT_SECRET", "secret"))
}

// IsTestEnv reports whether the service runs with external systems stubbed
// out (ENV=test).
func IsTestEnv() bool {
	return os.Getenv("ENV") == "test"
}
