package handlers

import "github.com/go-chi/chi/v5"

// Mountable is implemented by feature handlers that attach their routes
// to the API router.
type Mountable interface {
	Mount(r chi.Router)
}
