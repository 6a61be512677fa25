package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInvoiceFile(t *testing.T) {
	path := writeConfig(t, `
hotelName = "Sea View Resort"
checkInDate = "2024-01-01"
checkOutDate = 2024-01-03
roomPrice = 5000
gstPercentage = 12.5
`)

	values, err := LoadInvoiceFile(path)
	require.NoError(t, err)

	assert.Equal(t, []InvoiceValue{
		{Field: "checkInDate", Value: "2024-01-01"},
		{Field: "checkOutDate", Value: "2024-01-03"},
		{Field: "gstPercentage", Value: "12.5"},
		{Field: "hotelName", Value: "Sea View Resort"},
		{Field: "roomPrice", Value: "5000"},
	}, values)
}

func TestLoadInvoiceFile_Errors(t *testing.T) {
	t.Run("table value", func(t *testing.T) {
		path := writeConfig(t, "[hotel]\nname = \"x\"\n")

		_, err := LoadInvoiceFile(path)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadInvoiceFile("/nonexistent/invoice.toml")
		assert.ErrorIs(t, err, ErrDecode)
	})
}
