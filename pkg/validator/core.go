package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a single failed check on a named field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every failed check from one Apply pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for the field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names with errors, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Rule pairs a predicate with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes the rules and returns nil or the collected failures.
func Apply(rules ...Rule) error {
	var failures ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failures = append(failures, rule.Error)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return failures
}

// ExtractValidationErrors recovers structured validation errors from an
// error chain, or nil when the error carries none.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
