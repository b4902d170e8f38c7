package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderQR(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "match_id", "quantity", "status", "ordered_at"}).
			AddRow("ORD-1757692800-1", 1, 1, 3, "CONFIRMED", time.Now()))

	w := performRequest(t, r, http.MethodGet, "/api/v1/orders/ORD-1757692800-1/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderQRNotOwned(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(t, r, http.MethodGet, "/api/v1/orders/ORD-0-2/qr", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
