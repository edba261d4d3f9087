package users

import (
	"net/http"

	"github.com/sango-kit/sango/internal/core"
	"github.com/sango-kit/sango/internal/router"
)

// Prefix is the route prefix the users module is mounted under.
const Prefix = "/v1/users"

// NewRouter builds the HTTP handler for the users module.
// It is referenced from modules/manifest.go and mounted during startup.
func NewRouter(deps router.Deps) (http.Handler, error) {
	repo := NewUserRepository(deps.DB)
	useCase := NewUserUseCase(repo)

	mux := http.NewServeMux()

	mux.HandleFunc("GET "+Prefix, func(w http.ResponseWriter, r *http.Request) {
		result, err := useCase.List(r.Context(), core.PageParams(r))
		if err != nil {
			core.WriteError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusOK, result)
	})

	mux.HandleFunc("POST "+Prefix, func(w http.ResponseWriter, r *http.Request) {
		var req CreateUser
		if err := core.ReadJSON(r, &req); err != nil {
			core.WriteError(w, err)
			return
		}
		result, err := useCase.Create(r.Context(), req)
		if err != nil {
			core.WriteError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusCreated, result)
	})

	mux.HandleFunc("GET "+Prefix+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		result, err := useCase.GetByID(r.Context(), r.PathValue("id"))
		if err != nil {
			core.WriteError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusOK, result)
	})

	mux.HandleFunc("PATCH "+Prefix+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUser
		if err := core.ReadJSON(r, &req); err != nil {
			core.WriteError(w, err)
			return
		}
		result, err := useCase.Update(r.Context(), r.PathValue("id"), req)
		if err != nil {
			core.WriteError(w, err)
			return
		}
		core.WriteJSON(w, http.StatusOK, result)
	})

	mux.HandleFunc("DELETE "+Prefix+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := useCase.Delete(r.Context(), r.PathValue("id")); err != nil {
			core.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return mux, nil
}
