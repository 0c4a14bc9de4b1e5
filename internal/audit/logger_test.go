package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l := audit.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := l.LogContentWrite(context.Background(), audit.Entry{
		Method: "DELETE",
		Path:   "/api/v1/news/123",
		Entity: "news",
		Ref:    "123",
		Status: 204,
		At:     time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	var line struct {
		Msg   string         `json:"msg"`
		Audit map[string]any `json:"audit"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "content write", line.Msg)
	assert.Equal(t, "anonymous", line.Audit["subject"])
	assert.Equal(t, "news", line.Audit["entity"])
	assert.Equal(t, float64(204), line.Audit["status"])
}

func TestNoOpLogger(t *testing.T) {
	var l audit.Logger = &audit.NoOpLogger{}
	assert.NoError(t, l.LogContentWrite(context.Background(), audit.Entry{}))
}
