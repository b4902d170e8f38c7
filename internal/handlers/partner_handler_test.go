package handlers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferroviario/socio-api/internal/handlers"
)

func partnerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "logo_url", "discount", "is_featured", "how_to_use"})
}

func TestListBenefits(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "partners"`).
		WillReturnRows(partnerRows().
			AddRow("p-1", "Churrascaria do Sócio", "food", "", "20%", true, "[]").
			AddRow("p-2", "Academia Tubarão", "fitness", "", "10%", false, "[]"))

	w := performRequest(t, r, http.MethodGet, "/api/v1/benefits", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.BenefitsResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Featured, 1)
	assert.Equal(t, "p-1", resp.Featured[0].ID)
	assert.Len(t, resp.Partners, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBenefitStepList(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "partners"`).
		WillReturnRows(partnerRows().
			AddRow("p-1", "Churrascaria do Sócio", "food", "", "20%", true,
				`["Apresente a carteirinha","Informe o CPF"]`))

	w := performRequest(t, r, http.MethodGet, "/api/v1/benefits/p-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.PartnerDetailResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Apresente a carteirinha", "Informe o CPF"}, resp.HowToUse)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A stored non-list value is normalized into a single-element list.
func TestGetBenefitScalarHowToUse(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "partners"`).
		WillReturnRows(partnerRows().
			AddRow("p-2", "Academia Tubarão", "fitness", "", "10%", false,
				`"Apresente a carteirinha na recepção"`))

	w := performRequest(t, r, http.MethodGet, "/api/v1/benefits/p-2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.PartnerDetailResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Apresente a carteirinha na recepção"}, resp.HowToUse)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBenefitNotFound(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "partners"`).
		WillReturnRows(partnerRows())

	w := performRequest(t, r, http.MethodGet, "/api/v1/benefits/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
