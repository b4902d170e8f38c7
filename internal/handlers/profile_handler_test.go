package handlers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferroviario/socio-api/internal/models"
)

func TestGetProfile(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "tubarao_id", "full_name"}).
			AddRow(1, "socio_torcedor", "socio@ferroviario.com.br", "FER-0001", "Sócio Torcedor"))

	w := performRequest(t, r, http.MethodGet, "/api/v1/member/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	decodeBody(t, w, &user)
	assert.Equal(t, uint(1), user.ID)
	require.NotNil(t, user.TubaraoID)
	assert.Equal(t, "FER-0001", *user.TubaraoID)

	// The plaintext password must never leak into the payload.
	assert.NotContains(t, w.Body.String(), "password")

	assert.NoError(t, mock.ExpectationsWereMet())
}
