// internal/service/service.go
package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

// Meta describes the page returned by a list endpoint.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ListResponse is the envelope shared by every paginated endpoint.
type ListResponse[T any] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

// DataResponse wraps collections that are not paginated.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

func newList[T any](p repository.Pagination, total int64, data []T) *ListResponse[T] {
	c := p.Clamped()
	if data == nil {
		data = []T{}
	}
	return &ListResponse[T]{
		Meta: Meta{Page: c.Page, Limit: c.Limit, Total: total},
		Data: data,
	}
}

// clampInt bounds v to [lo, hi], substituting def when v is zero.
func clampInt(v, def, lo, hi int) int {
	if v == 0 {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeTags trims each name and drops blanks and exact duplicates, keeping first-seen order.
// Case is significant: "A" and "a" are different tags.
func NormalizeTags(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash    = regexp.MustCompile(`-+`)
)

// Slugify lowercases input and collapses everything outside [a-z0-9] into single dashes.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Clock returns the current time. Services take one so date-dependent logic is testable.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeSlug slugifies raw and rejects values that slugify to nothing.
func normalizeSlug(raw string) (string, error) {
	slug := Slugify(raw)
	if slug == "" {
		return "", validation.NewError("slug must contain at least one letter or digit")
	}
	return slug, nil
}

type field struct {
	name    string
	present bool
}

// requireFields reports every missing field at once.
func requireFields(fields ...field) error {
	var details []string
	for _, f := range fields {
		if !f.present {
			details = append(details, f.name+" is required")
		}
	}
	if len(details) > 0 {
		return validation.NewError(details...)
	}
	return nil
}

func validateEach[T any](v *validation.Validator, items []T) error {
	for i := range items {
		if err := v.Struct(items[i]); err != nil {
			return err
		}
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
