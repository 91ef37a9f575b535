package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEnvOverridesFlags(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://env")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("RECONCILE_WORKERS", "8")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	conf, err := LoadConfig([]string{"-d", "postgres://flag", "-a", ":9090", "-t", "flag-token"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", conf.DatabaseDSN)
	assert.Equal(t, ":9090", conf.RunAddress)
	assert.Equal(t, "flag-token", conf.HCloudToken)
	assert.Equal(t, uint(8), conf.ReconcileWorkers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, conf.CORSOrigins)

	// значения по умолчанию
	assert.Equal(t, 2*time.Minute, conf.ProviderTimeout)
	assert.Equal(t, 5*time.Second, conf.PricingCacheTTL)
	assert.Equal(t, "EUR", conf.DefaultCurrency)
	assert.Equal(t, "internal/db/migrations", conf.MigrationsDir)
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "no dsn", env: map[string]string{"JWT_SECRET": "s", "HCLOUD_TOKEN": "t"}},
		{name: "no secret", env: map[string]string{"DATABASE_URI": "d", "HCLOUD_TOKEN": "t"}},
		{name: "no token", env: map[string]string{"DATABASE_URI": "d", "JWT_SECRET": "s"}},
		{
			name: "bad timeout",
			env:  map[string]string{"DATABASE_URI": "d", "JWT_SECRET": "s", "HCLOUD_TOKEN": "t", "PROVIDER_TIMEOUT": "0s"},
		},
		{
			name: "unknown flag",
			env:  map[string]string{"DATABASE_URI": "d", "JWT_SECRET": "s", "HCLOUD_TOKEN": "t"},
			args: []string{"-unknown"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"DATABASE_URI", "JWT_SECRET", "HCLOUD_TOKEN", "PROVIDER_TIMEOUT"} {
				t.Setenv(k, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tc.args)
			assert.Error(t, err)
		})
	}
}
