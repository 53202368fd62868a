package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-manager/internal/repository/sqlite"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type testServer struct {
	handler *handlerImpl
	router  *gin.Engine
	logs    *bytes.Buffer
}

// newTestServer wires the handler to a task service over an in-memory
// database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := sqlite.Open(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })

	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	repo := sqlite.NewTaskRepository(db)

	h, err := New(logger, services.NewTaskService(logger, repo), repo)
	require.NoError(t, err)

	router := gin.New()
	RegisterRoutes(router, h)

	return &testServer{
		handler: h.(*handlerImpl),
		router:  router,
		logs:    &logs,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
