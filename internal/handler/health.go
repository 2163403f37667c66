package handler

import "net/http"

// Root handles GET /. It identifies the service, doubling as a liveness
// check for the frontend and deploy tooling.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Museums Of London API"})
}
