package healthdelivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	testCases := []struct {
		name       string
		buildStubs func(mock sqlmock.Sqlmock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "OK",
			buildStubs: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name: "Database down",
			buildStubs: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(sqlmock.ErrCancelled)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"degraded"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)

			t.Cleanup(func() { db.Close() })

			tc.buildStubs(mock)

			server := NewServer(db, zerolog.Nop())

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/healthz", nil)

			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatus, recorder.Code)
			require.JSONEq(t, tc.wantBody, recorder.Body.String())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	server := NewServer(db, zerolog.Nop())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "go_goroutines")
}
