package service_test

import (
	"testing"

	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  AI & Robotics ", "ai-and-robotics"},
		{"Q3/Q4 Results", "q3-q4-results"},
		{"Innovator's Day!!", "innovators-day"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Slugify(tt.in))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"A", "a"}, service.NormalizeTags([]string{"A", "a ", "A"}))
	assert.Equal(t, []string{"go", "ml"}, service.NormalizeTags([]string{" go", "", "ml", "  ", "go"}))
	assert.Empty(t, service.NormalizeTags(nil))
}
