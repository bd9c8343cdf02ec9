package ratefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/fx_rates_service/internal/adapters/ratefile"
	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "rates.json", `{ "USD": { "EUR": 0.92, "GBP": 0.79 }, "EUR": { "USD": 1.08 } }`)

	table, err := ratefile.Load(path)
	require.NoError(t, err)

	rate, ok := table.Lookup("usd", "gbp")
	assert.True(t, ok)
	assert.Equal(t, 0.79, rate)
	assert.Equal(t, 3, table.Pairs())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "rates.yaml", "USD:\n  EUR: 0.92\n  JPY: 151\nEUR:\n  USD: 1.08\n")

	table, err := ratefile.Load(path)
	require.NoError(t, err)

	rate, ok := table.Lookup("USD", "JPY")
	assert.True(t, ok)
	assert.Equal(t, 151.0, rate)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"malformed json", func(t *testing.T) string { return writeFile(t, "rates.json", `{"USD": {"EUR": 0.92}`) }},
		{"wrong shape", func(t *testing.T) string { return writeFile(t, "rates.json", `{"USD": 0.92}`) }},
		{"string rate", func(t *testing.T) string { return writeFile(t, "rates.json", `{"USD": {"EUR": "0.92"}}`) }},
		{"trailing data", func(t *testing.T) string { return writeFile(t, "rates.json", `{"USD": {"EUR": 0.92}} []`) }},
		{"empty document", func(t *testing.T) string { return writeFile(t, "rates.json", `{}`) }},
		{"null document", func(t *testing.T) string { return writeFile(t, "rates.json", `null`) }},
		{"zero rate", func(t *testing.T) string { return writeFile(t, "rates.json", `{"USD": {"EUR": 0}}`) }},
		{"malformed yaml", func(t *testing.T) string { return writeFile(t, "rates.yml", "USD: [EUR\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ratefile.Load(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, ratefile.FormatYAML, ratefile.FormatFromPath("/etc/fx/rates.YAML"))
	assert.Equal(t, ratefile.FormatYAML, ratefile.FormatFromPath("rates.yml"))
	assert.Equal(t, ratefile.FormatJSON, ratefile.FormatFromPath("rates.json"))
	assert.Equal(t, ratefile.FormatJSON, ratefile.FormatFromPath("rates"))
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := ratefile.Parse([]byte(`{}`), ratefile.Format("toml"))
	assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
}
