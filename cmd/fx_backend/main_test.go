package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/SscSPs/fx_rates_service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ratesFile string) *config.Config {
	return &config.Config{
		Port:               "0",
		RatesFile:          ratesFile,
		LogLevel:           slog.LevelError,
		CORSAllowedOrigins: []string{"*"},
		EnableMetrics:      true,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewServer_MissingRatesFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.json"))

	srv, err := newServer(cfg, discardLogger())

	require.Error(t, err)
	assert.Nil(t, srv, "no server is built, so no port is bound")
	assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
}

func TestNewServer_Ready(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"USD": {"EUR": 0.92}}`), 0o600))

	srv, err := newServer(testConfig(path), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, ":0", srv.Addr)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rate?from=usd&to=eur", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"from":"USD","to":"EUR","rate":0.92}`, w.Body.String())
}

func TestCheckRatesCmd(t *testing.T) {
	chdirForTest(t, t.TempDir())
	require.NoError(t, os.WriteFile("rates.yaml", []byte("USD:\n  EUR: 0.92\n  GBP: 0.79\n"), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check-rates", "--rates-file", "rates.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "rates.yaml: 1 base currencies, 2 pairs\n", out.String())
}

func TestCheckRatesCmd_Invalid(t *testing.T) {
	chdirForTest(t, t.TempDir())
	require.NoError(t, os.WriteFile("rates.json", []byte(`{"USD": {"EUR": 0}}`), 0o600))

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"check-rates"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, apperrors.ErrConfigLoad)
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("rates-file", "", "")
	flags.String("port", "", "")
	flags.String("static-dir", "", "")

	v := viper.New()
	require.NoError(t, bindFlags(v, flags))

	require.NoError(t, flags.Parse([]string{"--port", "9090", "--rates-file", "fx.yaml"}))
	assert.Equal(t, "9090", v.GetString(config.KeyPort))
	assert.Equal(t, "fx.yaml", v.GetString(config.KeyRatesFile))
}

func TestBindFlags_MissingFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("rates-file", "", "")

	err := bindFlags(viper.New(), flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--port")
}

func TestNewRootCmd_BindsPersistentFlags(t *testing.T) {
	assert.NotPanics(t, func() { newRootCmd() })
}
