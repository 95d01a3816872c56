package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randist/adapters/generators"
	"randist/internal/catalog"
	"randist/internal/errors"
)

func newTestServer() *Server {
	cfg := DefaultConfig()
	cfg.MaxSamples = 5000
	return NewServer(cfg, nil)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestSampleIsReproducible(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/v1/sample/normal?n=5&seed=42&engine=mt19937&mu=10&sigma=2")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[SampleResponse](t, rec)

	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, uint32(42), resp.Seed)
	assert.Equal(t, map[string]string{"mu": "10", "sigma": "2"}, resp.Params)

	gen, err := generators.ByName("mt19937", 42)
	require.NoError(t, err)
	smp, err := catalog.New("normal", gen, map[string]string{"mu": "10", "sigma": "2"})
	require.NoError(t, err)
	for i, v := range resp.Samples {
		assert.Equal(t, smp.Sample(), v, "sample %d", i)
	}
}

func TestSampleDefaults(t *testing.T) {
	rec := get(t, newTestServer(), "/v1/sample/poisson")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SampleResponse](t, rec)

	assert.Equal(t, 1000, resp.Count)
	assert.Equal(t, generators.DefaultEngine, resp.Engine)
	for _, v := range resp.Samples {
		assert.Equal(t, v, float64(int(v)))
	}
}

func TestBadRequests(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name  string
		url   string
		param string
	}{
		{"invalid parameter", "/v1/sample/normal?sigma=-1", "sigma"},
		{"unparsable parameter", "/v1/sample/normal?sigma=wide", "sigma"},
		{"unknown parameter", "/v1/sample/normal?rho=1", "rho"},
		{"unknown distribution", "/v1/sample/zipf", "distribution"},
		{"unknown engine", "/v1/sample/normal?engine=lcg", "engine"},
		{"n too large", "/v1/sample/normal?n=5001", "n"},
		{"n not a number", "/v1/profile/normal?n=many", "n"},
		{"bad seed", "/v1/sample/normal?seed=-4", "seed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decode[ErrorResponse](t, rec)
			assert.Equal(t, errors.CodeInvalidArgument, resp.Code)
			assert.Contains(t, resp.Params, tt.param)
		})
	}
}

func TestProfile(t *testing.T) {
	rec := get(t, newTestServer(), "/v1/profile/exponential?n=4000&seed=3&lambda=2")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[ProfileResponse](t, rec)

	p := resp.Profile
	require.NotNil(t, p)
	assert.Equal(t, 4000, p.Summary.Count)
	require.NotNil(t, p.Expected.Mean)
	assert.Equal(t, 0.5, *p.Expected.Mean)
	require.NotNil(t, p.Fit)
	assert.Greater(t, p.Fit.PValue, 1e-4)
}

func TestProfileSmallSample(t *testing.T) {
	for _, n := range []string{"1", "2", "3"} {
		rec := get(t, newTestServer(), "/v1/profile/normal?seed=1&n="+n)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[ProfileResponse](t, rec)
		require.NotNil(t, resp.Profile)
		assert.LessOrEqual(t, resp.Profile.Summary.Q25, resp.Profile.Summary.Q75)
	}
}

func TestProfileHTML(t *testing.T) {
	rec := get(t, newTestServer(), "/v1/profile/bernoulli?n=100&seed=3&format=html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "<table>")
	assert.Contains(t, rec.Body.String(), "No reference distribution")
}

func TestCatalog(t *testing.T) {
	rec := get(t, newTestServer(), "/v1/catalog")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CatalogResponse](t, rec)

	assert.Equal(t, generators.Names(), resp.Engines)
	assert.Len(t, resp.Distributions, len(catalog.Names()))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusOf(errors.InvalidArgument("x", "a")))
	assert.Equal(t, http.StatusBadRequest, statusOf(errors.NullReference("generator")))
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(errors.NotSupported("mode")))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.InternalError("boom")))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
