package router

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okFactory(body string) Factory {
	return func(Deps) (http.Handler, error) {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}), nil
	}
}

func TestRegistryRejectsDuplicatesAndInvalidEntries(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(Entry{Name: "products", Prefix: "/v1/products", Mount: okFactory("p")}))

	err := reg.Register(Entry{Name: "products", Prefix: "/v1/products", Mount: okFactory("p")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.Error(t, reg.Register(Entry{Prefix: "/v1/x", Mount: okFactory("x")}))
	require.Error(t, reg.Register(Entry{Name: "x", Prefix: "/v1/x"}))
}

func TestRegistryEntriesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"products", "health", "invoices"} {
		require.NoError(t, reg.Register(Entry{Name: name, Prefix: "/v1/" + name, Mount: okFactory(name)}))
	}

	assert.Equal(t, []string{"health", "invoices", "products"}, reg.Names())
}

func TestDiscoverIsolatesFailingModules(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Entry{Name: "alpha", Prefix: "/v1/alpha", Mount: okFactory("alpha")}))
	require.NoError(t, reg.Register(Entry{Name: "broken", Prefix: "/v1/broken", Mount: func(Deps) (http.Handler, error) {
		return nil, errors.New("bad wiring")
	}}))
	require.NoError(t, reg.Register(Entry{Name: "gamma", Prefix: "/v1/gamma", Mount: okFactory("gamma")}))

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	discovered := Discover(reg, Deps{Logger: logger})
	require.Len(t, discovered, 3)

	var failed, healthy int
	for _, d := range discovered {
		if d.Err != nil {
			failed++
			assert.Equal(t, "broken", d.Name)
			assert.Nil(t, d.Handler)
		} else {
			healthy++
			assert.NotNil(t, d.Handler)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, healthy)

	// The failing module appears in the diagnostic log exactly once.
	assert.Equal(t, 1, strings.Count(logBuf.String(), "module router skipped"))
	assert.Contains(t, logBuf.String(), "broken")
}

func TestDiscoverRecoversFromPanickingFactory(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Entry{Name: "panicky", Prefix: "/v1/panicky", Mount: func(Deps) (http.Handler, error) {
		panic("import-time explosion")
	}}))
	require.NoError(t, reg.Register(Entry{Name: "steady", Prefix: "/v1/steady", Mount: okFactory("steady")}))

	discovered := Discover(reg, Deps{})
	require.Len(t, discovered, 2)

	assert.Error(t, discovered[0].Err)
	assert.Contains(t, discovered[0].Err.Error(), "panicked")
	assert.NoError(t, discovered[1].Err)
}

func TestDiscoverRejectsNilHandler(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Entry{Name: "empty", Prefix: "/v1/empty", Mount: func(Deps) (http.Handler, error) {
		return nil, nil
	}}))

	discovered := Discover(reg, Deps{})
	require.Len(t, discovered, 1)
	assert.Error(t, discovered[0].Err)
}

func TestMountSkipsFailuresAndServesTheRest(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Entry{Name: "alpha", Prefix: "/v1/alpha", Mount: okFactory("alpha-ok")}))
	require.NoError(t, reg.Register(Entry{Name: "broken", Prefix: "/v1/broken", Mount: func(Deps) (http.Handler, error) {
		return nil, errors.New("bad wiring")
	}}))

	mux := http.NewServeMux()
	mounted := Mount(mux, Discover(reg, Deps{}))
	assert.Equal(t, 1, mounted)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/alpha", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alpha-ok", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/broken", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRegistryFromManifest(t *testing.T) {
	entries := []Entry{
		{Name: "health", Prefix: "/v1/health", Mount: okFactory("ok")},
		{Name: "users", Prefix: "/v1/users", Mount: okFactory("ok")},
	}

	reg, err := NewRegistryFromManifest(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"health", "users"}, reg.Names())

	_, err = NewRegistryFromManifest(append(entries, entries[0]))
	require.Error(t, err)
}
