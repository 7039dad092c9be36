package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxReceiptBytes)
	assert.False(t, cfg.Events.Enabled())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NotNil(t, cfg.JWT.PublicKey)
	assert.NotNil(t, cfg.JWT.PrivateKey)
}

func TestLoad_PublicKeyFromEnv(t *testing.T) {
	_, pub, err := GenerateRSAKeyPair()
	require.NoError(t, err)
	encoded, err := EncodePublicKey(pub)
	require.NoError(t, err)

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PUBLIC_KEY", encoded)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.JWT.PrivateKey)
	assert.Equal(t, pub.N, cfg.JWT.PublicKey.N)
}

func TestLoad_ProductionRequiresPublicKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PUBLIC_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPublicKey(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PUBLIC_KEY", "not-base64!!")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: DriverSQLite},
			Security: SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10},
			Storage:  StorageConfig{Backend: StorageBackendLocal, Dir: "tmp", MaxReceiptBytes: 1024},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"gcs without bucket", func(c *Config) { c.Storage.Backend = StorageBackendGCS }, true},
		{"gcs with bucket", func(c *Config) { c.Storage.Backend = StorageBackendGCS; c.Storage.Bucket = "receipts" }, false},
		{"unknown storage", func(c *Config) { c.Storage.Backend = "s3" }, true},
		{"zero receipt size", func(c *Config) { c.Storage.MaxReceiptBytes = 0 }, true},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitPerSecond = 0 }, true},
		{"amqp without queue", func(c *Config) { c.Events = EventsConfig{AMQPURL: "amqp://localhost", Exchange: "x"} }, true},
		{"amqp configured", func(c *Config) { c.Events = EventsConfig{AMQPURL: "amqp://localhost", Exchange: "x", Queue: "q"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	pg := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: DriverSQLite, SQLitePath: "finance.db"}
	assert.Equal(t, "finance.db", lite.DSN())
}
