package config

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvUint parses the variable named by key, or returns fallback if it is
// unset or empty.
func getEnvUint(key string, fallback uint64) (uint64, error) {
	v := GetEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// getEnvBool parses the variable named by key, or returns fallback if it is
// unset or empty.
func getEnvBool(key string, fallback bool) (bool, error) {
	v := GetEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
