package server

import (
	"net/http"

	"github.com/bobmcallan/jinyao-fortune/internal/handlers"
)

// RouteHandler is a function type for HTTP handlers.
type RouteHandler func(http.ResponseWriter, *http.Request)

// MethodRouter maps HTTP methods to handlers.
type MethodRouter map[string]RouteHandler

// RouteByMethod routes requests based on HTTP method. A GET route also
// answers HEAD.
func RouteByMethod(w http.ResponseWriter, r *http.Request, routes MethodRouter) {
	handler, ok := routes[r.Method]
	if !ok && r.Method == http.MethodHead {
		handler, ok = routes[http.MethodGet]
	}
	if !ok {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	handler(w, r)
}

// RouteResourceCollection handles standard list + create pattern.
// GET -> list, POST -> create.
func RouteResourceCollection(w http.ResponseWriter, r *http.Request, list, create RouteHandler) {
	routes := make(MethodRouter)
	if list != nil {
		routes[http.MethodGet] = list
	}
	if create != nil {
		routes[http.MethodPost] = create
	}
	RouteByMethod(w, r, routes)
}
