package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type observation struct {
	method, route, status string
}

type httpRecorder struct{ seen []observation }

func (r *httpRecorder) ObserveHTTPRequest(method, route, status string, _ float64) {
	r.seen = append(r.seen, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	rec := &httpRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.HandleFunc("/appointments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/appointments/7", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/appointments/8", nil))

	require.Len(t, rec.seen, 2)
	assert.Equal(t, observation{http.MethodGet, "/appointments/{id}", "404"}, rec.seen[0])
	assert.Equal(t, rec.seen[0], rec.seen[1])
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		fromCtx, _ = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(HeaderRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, fromCtx)
	})

	t.Run("propagated", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, incoming)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, incoming, w.Header().Get(HeaderRequestID))
		assert.Equal(t, incoming, fromCtx)
	})

	t.Run("garbage replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "not-an-id\n")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.NotEqual(t, "not-an-id\n", w.Header().Get(HeaderRequestID))
	})
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	h := Logging(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/appointments", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
