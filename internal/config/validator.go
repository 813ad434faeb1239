/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/httpx"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "http.timeout")
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
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError}
}

// ValidClientKinds returns the client kinds httpx.DefaultClientFactory accepts
func ValidClientKinds() []string {
	return []string{httpx.KindDefault, httpx.KindRetrying}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	h := c.HTTP
	if !slices.Contains(ValidClientKinds(), strings.ToLower(h.Kind)) {
		errs = append(errs, ValidationError{
			Field:   "http.kind",
			Value:   h.Kind,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidClientKinds(), ", ")),
		})
	}
	if h.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "http.timeout", Value: h.Timeout, Message: "must not be negative"})
	}
	if h.MaxRetries < 0 {
		errs = append(errs, ValidationError{Field: "http.max_retries", Value: h.MaxRetries, Message: "must not be negative"})
	}
	if h.RetryWaitMin < 0 {
		errs = append(errs, ValidationError{Field: "http.retry_wait_min", Value: h.RetryWaitMin, Message: "must not be negative"})
	}
	if h.RetryWaitMax < 0 {
		errs = append(errs, ValidationError{Field: "http.retry_wait_max", Value: h.RetryWaitMax, Message: "must not be negative"})
	}
	if h.RetryWaitMin > 0 && h.RetryWaitMax > 0 && h.RetryWaitMax < h.RetryWaitMin {
		errs = append(errs, ValidationError{Field: "http.retry_wait_max", Value: h.RetryWaitMax, Message: "must not be less than http.retry_wait_min"})
	}
	if h.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "http.rate_limit", Value: h.RateLimit, Message: "must not be negative"})
	}
	if h.Burst < 0 {
		errs = append(errs, ValidationError{Field: "http.burst", Value: h.Burst, Message: "must not be negative"})
	}

	if c.OutputDir == "" {
		errs = append(errs, ValidationError{Field: "output_dir", Value: c.OutputDir, Message: "must not be empty"})
	}

	return errs
}
