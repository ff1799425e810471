package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testAPI struct {
	queries   *queryServiceMock
	lister    *displayListerMock
	assistant *assistantServiceMock
	handler   http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		queries:   &queryServiceMock{},
		lister:    &displayListerMock{},
		assistant: &assistantServiceMock{},
	}
	log := discardLogger()
	api.handler = NewRouter(Handlers{
		Health:    NewHealthHandler(&dbPingerMock{}, "test", true),
		Queries:   NewQueryHandler(api.queries, api.lister, log),
		Assistant: NewAssistantHandler(api.assistant, log),
	})
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

var (
	testNow    = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testClient = domain.ClientRef{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), DisplayName: "Acme"}
)

func sampleView(notes ...string) *domain.QueryView {
	q := domain.Query{
		ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		ClientID:    testClient.ID,
		ClientName:  "Acme",
		Description: "printer jam",
		CreatedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.QueryStatusOpen,
		Notes:       []domain.Note{},
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	for _, text := range notes {
		q.Notes = append(q.Notes, domain.Note{ID: uuid.New(), Text: text, CreatedAt: testNow})
	}
	client := testClient
	return &domain.QueryView{Query: q, Client: &client}
}
