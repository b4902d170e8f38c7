package handlers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferroviario/socio-api/internal/handlers"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password"})
}

func TestLoginSuccess(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(1, "socio_torcedor", "socio@ferroviario.com.br", "tubarao123"))

	w := performRequest(t, r, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "socio@ferroviario.com.br",
		"password": "tubarao123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.LoginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, handlers.PlaceholderToken, resp.AccessToken)
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "socio_torcedor", resp.User.Name)
	assert.Equal(t, "socio@ferroviario.com.br", resp.User.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(1, "socio_torcedor", "socio@ferroviario.com.br", "tubarao123"))

	w := performRequest(t, r, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "socio@ferroviario.com.br",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(userRows())

	w := performRequest(t, r, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "nobody@ferroviario.com.br",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginMalformedBody(t *testing.T) {
	r, mock := setupTest(t)

	w := performRequest(t, r, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
