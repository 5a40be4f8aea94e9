// Package config loads the service configuration with viper from defaults,
// an optional config file and KEYSFINDER_* environment variables, and
// validates the result with go-playground/validator struct tags.
package config
