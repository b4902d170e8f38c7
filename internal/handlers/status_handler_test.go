package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusConnected(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	w := performRequest(t, r, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "connected", resp["database"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Probe failures are reported in the payload, not as an HTTP error.
func TestStatusProbeFailure(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT 1`).
		WillReturnError(errors.New("connection refused"))

	w := performRequest(t, r, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["database"], "connection failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoot(t *testing.T) {
	r, _ := setupTest(t)

	w := performRequest(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Contains(t, resp["message"], "Sócio Torcedor")
}
