package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nurshapagat1/electronix-app/config"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "sekrit")
	t.Setenv("ADMIN_API_KEY", "admin-key")
	t.Setenv("SUPER_ADMIN_EMAIL", "root@electronix.example")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "electronix")
	t.Setenv("DB_PORT", "5433")

	cfg := config.Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sekrit", cfg.JWTSecret)
	assert.Equal(t, "admin-key", cfg.AdminAPIKey)
	assert.Equal(t, "root@electronix.example", cfg.SuperAdminEmail)
	assert.Equal(t,
		"host=localhost user=shop password=pw dbname=electronix port=5433 sslmode=disable",
		cfg.DSN())
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://shop:pw@db:5432/electronix")

	cfg := config.Load()
	assert.Equal(t, "postgres://shop:pw@db:5432/electronix", cfg.DSN())
}
