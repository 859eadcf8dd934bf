// Package env holds tiny os.Getenv helpers for knobs that never made it
// into pkg/config.
package env

import "os"

// Get returns the variable's value, or fallback when unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
