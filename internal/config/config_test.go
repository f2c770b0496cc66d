package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "aarti"
password = "aarti"
dbname = "aarti_booking"
sslmode = "disable"

[logs]
file = "logs/aarti-booking.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "aarti-booking-portal"

[admin]
token = "secret"
`

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "aarti_booking", cfg.Database.DBName)
	assert.Equal(t, "secret", cfg.Admin.Token)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		wantErr string
	}{
		{
			name: "missing port",
			mutate: `
[database]
host = "localhost"
dbname = "aarti_booking"
[admin]
token = "secret"
`,
			wantErr: "http_port",
		},
		{
			name: "missing database host",
			mutate: `
[server]
http_port = 8080
[database]
dbname = "aarti_booking"
[admin]
token = "secret"
`,
			wantErr: "database.host",
		},
		{
			name: "missing admin token",
			mutate: `
[server]
http_port = 8080
[database]
host = "localhost"
dbname = "aarti_booking"
`,
			wantErr: "admin.token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.mutate))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=aarti password=aarti dbname=aarti_booking sslmode=disable",
		cfg.Database.DSN())
}
