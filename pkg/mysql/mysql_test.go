package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     "3306",
		User:     "rbp",
		Password: "secret",
		Name:     "messages",
	}

	dsn := BuildDSN(cfg)

	assert.Contains(t, dsn, "rbp:secret@tcp(localhost:3306)/messages?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, parseLogLevel("silent"))
	assert.Equal(t, gormLogger.Error, parseLogLevel("error"))
	assert.Equal(t, gormLogger.Info, parseLogLevel("info"))
	assert.Equal(t, gormLogger.Warn, parseLogLevel(""))
}
