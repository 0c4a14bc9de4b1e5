package database_test

import (
	"testing"

	"github.com/dangerclosesec/thinknest/internal/database"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent":  logger.Silent,
		"ERROR":   logger.Error,
		"info":    logger.Info,
		"warn":    logger.Warn,
		"":        logger.Warn,
		"verbose": logger.Warn,
	}
	for in, want := range cases {
		assert.Equal(t, want, database.LogLevel(in), in)
	}
}
