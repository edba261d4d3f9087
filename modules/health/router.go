package health

import (
	"net/http"

	"github.com/sango-kit/sango/internal/core"
	"github.com/sango-kit/sango/internal/router"
)

// Prefix is the route prefix the health module is mounted under.
const Prefix = "/v1/health"

type status struct {
	Status string `json:"status"`
}

// NewRouter builds the HTTP handler for the health module.
// It is referenced from modules/manifest.go and mounted during startup.
func NewRouter(deps router.Deps) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+Prefix, func(w http.ResponseWriter, r *http.Request) {
		core.WriteJSON(w, http.StatusOK, status{Status: "ok"})
	})

	return mux, nil
}
