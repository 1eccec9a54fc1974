package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsutar/coldstrg-sub001/pkg/config"
)

// Sin env vars ni archivo, Load debe devolver los defaults de desarrollo.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "coldstrg", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_SECRET", "super-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
}

// El DSN debe escapar caracteres especiales en la contraseña.
func TestDSN_EscapaPassword(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/w:rd",
		DBName:   "coldstrg",
		SSLMode:  "require",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fw%3Ard")
	assert.Contains(t, dsn, "sslmode=require")
}

// DATABASE_URL completo tiene prioridad sobre los campos individuales.
func TestConnectionString_DatabaseURLPrioridad(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remote:5432/x?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, "postgresql://u:p@remote:5432/x?sslmode=require", db.ConnectionString())
}
