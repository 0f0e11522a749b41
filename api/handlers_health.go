package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{}
	for name, up := range s.dashboard.Healthy() {
		if up {
			services[name] = "up"
		} else {
			services[name] = "unknown"
		}
	}

	s.sendJSONResponse(w, map[string]interface{}{
		"status":   "ok",
		"services": services,
	})
}
