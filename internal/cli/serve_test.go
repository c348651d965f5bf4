package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerSharesCommandLogger(t *testing.T) {
	var buf bytes.Buffer
	setupLogger(&buf, true)
	t.Cleanup(func() { setupLogger(os.Stderr, false) })

	e, h := newServer(NewConfig())
	assert.Equal(t, log.DEBUG, e.Logger.Level())
	assert.Same(t, &buf, e.Logger.Output())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Request lines go to the same writer.
	assert.Contains(t, buf.String(), "/api/status")

	s, err := loadSession(testConfig(t))
	require.NoError(t, err)
	h.SetSession(s)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/names/kelly", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadSessionPrefersProcessedData(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, convert(cfg, &bytes.Buffer{}))

	// With the spreadsheet gone, only the processed data can serve.
	require.NoError(t, os.Remove(cfg.Data))
	s, err := loadSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1981, s.MaxYear)
}
