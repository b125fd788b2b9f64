// Package config loads, normalizes, and validates corfetch configuration.
package config
