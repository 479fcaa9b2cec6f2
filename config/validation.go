package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable before anything is
// opened or served.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, ValidationError{Field: "ServerPort", Message: "server port is required"}.Error())
	} else if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, ValidationError{Field: "ServerPort", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}
	if cfg.DBPath == "" {
		errors = append(errors, ValidationError{Field: "DBPath", Message: "database path is required"}.Error())
	}
	if cfg.ShareBaseURL == "" {
		errors = append(errors, ValidationError{Field: "ShareBaseURL", Message: "share base URL is required"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
