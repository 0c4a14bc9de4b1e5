// internal/model/types.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// CommaList is a text column holding comma separated values, e.g. "launch,2024,keynote".
type CommaList []string

// Scan implements the sql.Scanner interface
func (c *CommaList) Scan(value interface{}) error {
	if value == nil {
		*c = CommaList{}
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, c)
	}

	*c = ParseCommaList(str)
	return nil
}

// Value implements the driver.Valuer interface
func (c CommaList) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return strings.Join(c, ","), nil
}

// ParseCommaList splits raw on commas, trimming entries and dropping blanks and exact duplicates.
func ParseCommaList(raw string) CommaList {
	out := CommaList{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
