package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "capture.capacity")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid capture levels
func ValidLogLevels() []string {
	return []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}
}

// Validate checks the configuration for invalid values.
// Returns a slice of all validation errors found (empty if valid).
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCapture()...)
	errors = append(errors, c.validateTUI()...)

	return errors
}

// validateCapture validates the CaptureConfig
func (c *Config) validateCapture() []ValidationError {
	var errors []ValidationError

	if c.Capture.Capacity <= 0 {
		errors = append(errors, ValidationError{
			Field:   "capture.capacity",
			Value:   c.Capture.Capacity,
			Message: "must be positive",
		})
	}

	// Upper bound keeps memory per store predictable
	const maxCapacity = 1_000_000
	if c.Capture.Capacity > maxCapacity {
		errors = append(errors, ValidationError{
			Field:   "capture.capacity",
			Value:   c.Capture.Capacity,
			Message: fmt.Sprintf("exceeds maximum of %d", maxCapacity),
		})
	}

	if c.Capture.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToUpper(c.Capture.Level)) {
		errors = append(errors, ValidationError{
			Field:   "capture.level",
			Value:   c.Capture.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	seen := make(map[string]bool)
	for _, src := range c.Capture.Sources {
		if strings.TrimSpace(src) == "" {
			errors = append(errors, ValidationError{
				Field:   "capture.sources",
				Value:   src,
				Message: "source identifiers must not be empty",
			})
			continue
		}
		if seen[src] {
			errors = append(errors, ValidationError{
				Field:   "capture.sources",
				Value:   src,
				Message: "duplicate source identifier",
			})
		}
		seen[src] = true
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.TickIntervalMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: "must be non-negative",
		})
	}

	const maxTickMs = 10_000
	if c.TUI.TickIntervalMs > maxTickMs {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTickMs),
		})
	}

	return errors
}
