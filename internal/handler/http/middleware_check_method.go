package http

import (
	"net/http"

	"github.com/Reznov00/wallet-keeper/internal/utils"
)

// notFound is registered as the router's NotFound handler so that unknown
// routes answer with the same JSON error body as every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// Chi has already set the Allow header by the time it is called.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
