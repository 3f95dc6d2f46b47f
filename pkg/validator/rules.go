package validator

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Required validates that a string is not empty or whitespace-only.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// ValidEmail validates that a string is a plausible email address for web
// use: RFC 5322 parseable with a dotted, non-empty domain. An empty value
// passes so Required stays the single source of the "missing field" failure;
// combine the two when the field is mandatory.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) == "" || isEmail(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// ValidEmailList validates every entry of a list of email addresses.
// An empty list passes; combine with NonEmptyList when at least one entry is
// required.
func ValidEmailList(field string, values []string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !isEmail(v) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must contain only valid email addresses"},
	}
}

// NonEmptyList validates that a list has at least one entry.
func NonEmptyList[T any](field string, values []T) Rule {
	return Rule{
		Check: func() bool { return len(values) > 0 },
		Error: ValidationError{Field: field, Message: "must not be empty"},
	}
}

// MaxLen validates that a list does not exceed n entries.
func MaxLen[T any](field string, values []T, n int) Rule {
	return Rule{
		Check: func() bool { return len(values) <= n },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must not exceed %d entries", n)},
	}
}

// ValidURL validates that a string is an absolute http(s) URL. An empty value
// passes; combine with Required when the field is mandatory.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return true
			}
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{Field: field, Message: "must be a valid URL"},
	}
}

// ValidBase64 validates that a string decodes as standard base64.
func ValidBase64(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := base64.StdEncoding.DecodeString(value)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be valid base64"},
	}
}

func isEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts domains without dots and display names;
	// tighten to the shapes typical for web input.
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
