package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rallypointwellness.com/site/internal/observability"
)

func assetFS() fstest.MapFS {
	return fstest.MapFS{
		"site.css":     {Data: []byte("body{margin:0}")},
		"img/logo.svg": {Data: []byte("<svg/>")},
	}
}

func TestAssetsWithCacheHeaders(t *testing.T) {
	t.Parallel()

	h := AssetsWithCache(assetFS())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/site.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{margin:0}", rec.Body.String())
	require.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")
	etag := rec.Header().Get("ETag")
	require.True(t, strings.HasPrefix(etag, `W/"`))

	nested := httptest.NewRecorder()
	h.ServeHTTP(nested, httptest.NewRequest(http.MethodGet, "/img/logo.svg", nil))
	require.Equal(t, http.StatusOK, nested.Code)
	require.NotEmpty(t, nested.Header().Get("ETag"))
	require.NotEqual(t, etag, nested.Header().Get("ETag"))
}

func TestAssetsWithCacheNotModified(t *testing.T) {
	t.Parallel()

	h := AssetsWithCache(assetFS())
	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/site.css", nil))
	etag := first.Header().Get("ETag")

	for _, inm := range []string{etag, `"other", ` + etag, "*"} {
		req := httptest.NewRequest(http.MethodGet, "/site.css", nil)
		req.Header.Set("If-None-Match", inm)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotModified, rec.Code, inm)
		require.Empty(t, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/site.css", nil)
	req.Header.Set("If-None-Match", `W/"stale"`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAssetsMissingFile(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	AssetsWithCache(assetFS()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope.css", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Header().Get("ETag"))
}

func TestETags(t *testing.T) {
	t.Parallel()

	tags, err := ETags(assetFS())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Contains(t, tags, "img/logo.svg")
}

func TestLoggerRecordsCompletion(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(Logger(zap.New(core)))
	r.Get("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, chiMid.GetReqID(r.Context()))
		observability.FromContext(r.Context()).Debug("inside")
		_, _ = w.Write([]byte("hi"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusInternalServerError, errors.New("render failed"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello/x", nil))
	require.Equal(t, "hi", rec.Body.String())

	inside := logs.FilterMessage("inside").All()
	require.Len(t, inside, 1)
	require.NotEmpty(t, inside[0].ContextMap()["request_id"])

	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	require.Equal(t, "/hello/{name}", fields["route"])
	require.EqualValues(t, http.StatusOK, fields["status"])
	require.EqualValues(t, 2, fields["bytes"])
	require.Equal(t, zapcore.InfoLevel, done[0].Level)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "render failed")
	require.Len(t, logs.FilterMessage("request failed").All(), 1)
	last := logs.FilterMessage("request completed").All()
	require.Equal(t, zapcore.ErrorLevel, last[len(last)-1].Level)
}

func TestResponseRecorderDefaults(t *testing.T) {
	t.Parallel()

	rec := NewResponseRecorder(httptest.NewRecorder())
	require.Equal(t, http.StatusOK, rec.Status())
	_, _ = rec.Write([]byte("abc"))
	require.EqualValues(t, 3, rec.BytesWritten())
	rec.WriteHeader(http.StatusTeapot)
	require.Equal(t, http.StatusTeapot, rec.Status())
}
