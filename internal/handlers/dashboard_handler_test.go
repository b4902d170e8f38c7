package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferroviario/socio-api/internal/handlers"
	"github.com/ferroviario/socio-api/internal/models"
)

func mediaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "thumbnail_url", "video_url", "published_at"})
}

func TestDashboard(t *testing.T) {
	r, mock := setupTest(t)

	kickoff := time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC)
	published := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "matches" WHERE status IN`).
		WillReturnRows(matchRows().
			AddRow(1, models.MatchStatusUpcoming, "Elzir Cabral", "Ferroviário", "Fortaleza", true, kickoff, 1))
	mock.ExpectQuery(`SELECT \* FROM "news"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "published_at"}).
			AddRow("news-1", "Tubarão vence clássico", published).
			AddRow("news-2", "Elenco reapresenta-se", published))
	mock.ExpectQuery(`SELECT \* FROM "press_conferences"`).
		WillReturnRows(mediaRows().AddRow("press-1", "Coletiva pós-jogo", "", "", published))
	mock.ExpectQuery(`SELECT \* FROM "videos"`).
		WillReturnRows(mediaRows().AddRow("video-1", "Bastidores", "", "", published))

	w := performRequest(t, r, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.DashboardResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.NextMatch)
	assert.Equal(t, uint(1), resp.NextMatch.ID)
	assert.Len(t, resp.News, 2)
	assert.Len(t, resp.PressConferences, 1)
	assert.Len(t, resp.Videos, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// With no upcoming or live match the next_match key is absent entirely.
func TestDashboardWithoutNextMatch(t *testing.T) {
	r, mock := setupTest(t)

	mock.ExpectQuery(`SELECT \* FROM "matches" WHERE status IN`).
		WillReturnRows(matchRows())
	mock.ExpectQuery(`SELECT \* FROM "news"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "published_at"}))
	mock.ExpectQuery(`SELECT \* FROM "press_conferences"`).
		WillReturnRows(mediaRows())
	mock.ExpectQuery(`SELECT \* FROM "videos"`).
		WillReturnRows(mediaRows())

	w := performRequest(t, r, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	decodeBody(t, w, &raw)
	_, hasNextMatch := raw["next_match"]
	assert.False(t, hasNextMatch)

	assert.NoError(t, mock.ExpectationsWereMet())
}
