package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig()
	assert.Equal(t, "localhost", cfg.DatabaseHost)
	assert.Equal(t, "5432", cfg.DatabasePort)
	assert.Equal(t, "postgres", cfg.PostgresUser)
	assert.Equal(t, "postgres", cfg.PostgresPassword)
	assert.Equal(t, "postgres", cfg.DatabaseName)
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "/api", cfg.BasePath)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "p@ss:w/rd%!")
	t.Setenv("BASE_PATH", "/v1")
	t.Setenv("FRONTEND_ORIGINS", "https://calendar.example.com,https://staging.example.com")

	cfg := loadConfig()
	assert.Equal(t, "db.internal", cfg.DatabaseHost)
	// passwords are taken verbatim, no URL escaping involved
	assert.Equal(t, "p@ss:w/rd%!", cfg.PostgresPassword)
	assert.Equal(t, "/v1", cfg.BasePath)
	assert.Equal(t, []string{"https://calendar.example.com", "https://staging.example.com"}, cfg.FrontendOrigins)
}
