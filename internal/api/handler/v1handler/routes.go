package v1handler

import (
	"flooow/pkg/serrors"
	"net/http"
	"strings"
)

// routeMethods are the methods the v1 routes are registered with.
var routeMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete} //nolint: gochecknoglobals

// Routes returns the v1 API mounted under /v1. Bracket lookups are public;
// simulations and stats require a bearer token verified by sec.
func (h Handler) Routes(sec *SecHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/brackets", h.ListBrackets)
	mux.HandleFunc("GET /v1/brackets/map", h.MapBracket)
	mux.HandleFunc("GET /v1/brackets/label", h.BracketLabel)

	mux.Handle("POST /v1/simulations", sec.Middleware(http.HandlerFunc(h.CreateSimulation)))
	mux.Handle("GET /v1/simulations", sec.Middleware(http.HandlerFunc(h.ListSimulations)))
	mux.Handle("GET /v1/simulations/{id}", sec.Middleware(http.HandlerFunc(h.GetSimulation)))
	mux.Handle("DELETE /v1/simulations/{id}", sec.Middleware(http.HandlerFunc(h.DeleteSimulation)))
	mux.Handle("GET /v1/stats/brackets", sec.Middleware(http.HandlerFunc(h.BracketStats)))

	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(mux, r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			writeError(w, r, serrors.With(serrors.ErrMethodNotAllowed, "%s is not allowed on %s", r.Method, r.URL.Path))

			return
		}
		writeError(w, r, serrors.With(serrors.ErrNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})

	return mux
}

// allowedMethods lists the methods that have a route for r's path.
func allowedMethods(mux *http.ServeMux, r *http.Request) []string {
	var allowed []string
	for _, method := range routeMethods {
		if method == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := mux.Handler(alt); pattern != "" && pattern != "/v1/" {
			allowed = append(allowed, method)
		}
	}

	return allowed
}
