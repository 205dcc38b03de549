package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/domainkit/domainkit/pkg/result"
)

// Email validates an email address using the RFC 5322 parser. Addresses
// with a display name part are rejected: only the bare address form is
// accepted.
func Email(field, value string) result.Validation {
	return result.ValidateValue(func() bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return false
		}
		return addr.Address == value
	}, fmt.Sprintf("%s must be a valid email address", field), value)
}

// URL validates an absolute URL with a scheme and host.
func URL(field, value string) result.Validation {
	return result.ValidateValue(func() bool {
		return parseURL(value) != nil
	}, fmt.Sprintf("%s must be a valid URL", field), value)
}

// URLWithScheme validates an absolute URL whose scheme is in the allowed
// list.
func URLWithScheme(field, value string, schemes []string) result.Validation {
	return result.ValidateValue(func() bool {
		u := parseURL(value)
		return u != nil && slices.Contains(schemes, u.Scheme)
	}, fmt.Sprintf("%s must be a valid URL with scheme: %s", field, strings.Join(schemes, ", ")), value)
}

func parseURL(value string) *url.URL {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return u
}
