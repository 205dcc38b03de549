package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/domainkit/domainkit/pkg/result"
)

// UUID validates standard 36-character UUID format. Length and hyphen
// positions are checked before parsing to reject malformed input cheaply.
func UUID(field, value string) result.Validation {
	return result.ValidateValue(func() bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		if len(value) != 36 {
			return false
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}

		_, err := uuid.Parse(value)
		return err == nil
	}, fmt.Sprintf("%s must be a valid UUID", field), value)
}

// NonNilUUID validates that an already-parsed UUID is not the nil UUID.
func NonNilUUID(field string, id uuid.UUID) result.Validation {
	return result.ValidateValue(func() bool {
		return id != uuid.Nil
	}, fmt.Sprintf("%s must not be the nil UUID", field), id.String())
}
