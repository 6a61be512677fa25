package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBillService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[invoice]
hotel_name = "Sea View Resort"
room_price = "7500"

[barcode]
height = 60

[export]
dir = "/var/spool/bills"
format = "pdf"
print_command = ["lp", "-d", "frontdesk"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "Sea View Resort", cfg.Invoice.HotelName)
	assert.Equal(t, "7500", cfg.Invoice.RoomPrice)
	assert.Equal(t, "Deluxe Suite", cfg.Invoice.RoomType)
	assert.Equal(t, 2, cfg.Barcode.ModuleWidth)
	assert.Equal(t, 60, cfg.Barcode.Height)
	assert.Equal(t, "pdf", cfg.Export.Format)
	assert.Equal(t, []string{"lp", "-d", "frontdesk"}, cfg.Export.PrintCommand)
}

func TestLoad_DecodeError(t *testing.T) {
	path := writeConfig(t, "[server\nhttp_port = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port zero", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"port too big", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -1 }},
		{"unknown log level", func(c *Config) { c.Logs.Level = "verbose" }},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }},
		{"negative barcode", func(c *Config) { c.Barcode.Height = -5 }},
		{"unknown format", func(c *Config) { c.Export.Format = "docx" }},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})
}

func TestInvoiceConfig_NewInvoice(t *testing.T) {
	now := time.Date(2024, 12, 31, 18, 30, 0, 0, time.UTC)

	inv := Default().Invoice.NewInvoice(now, "INV-123456")

	assert.Equal(t, "Grand Royal Hotel", inv.HotelName)
	assert.Equal(t, "INV-123456", inv.BillNumber)
	assert.Equal(t, "2024-12-31", inv.CheckInDate)
	assert.Equal(t, "2025-01-01", inv.CheckOutDate)
	assert.Equal(t, "14:00", inv.CheckInTime)
	assert.Equal(t, "12:00", inv.CheckOutTime)
	assert.Equal(t, types.NumericString("5000"), inv.RoomPrice)
	assert.Equal(t, types.NumericString("2"), inv.NumberOfPeople)
	assert.Equal(t, types.NumericString("18"), inv.GSTPercentage)
	assert.Equal(t, types.NumericString("10"), inv.ServiceChargePercentage)
}
