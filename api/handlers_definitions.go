package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CreativeUnicorns/switcherprefs"
)

// definitionResponse is a definition with its default evaluated on this host.
type definitionResponse struct {
	switcherprefs.Definition
	EffectiveDefault string `json:"effectiveDefault"`
}

func (s *Server) definitionResponse(d switcherprefs.Definition) definitionResponse {
	effective, _ := s.store.Default(d.Key)
	return definitionResponse{Definition: d, EffectiveDefault: effective}
}

// handleListDefinitions handles fetching all preference definitions.
func (s *Server) handleListDefinitions(w http.ResponseWriter, r *http.Request) {
	defs := switcherprefs.Definitions()
	out := make([]definitionResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, s.definitionResponse(d))
	}
	s.respondWithJSON(w, r, http.StatusOK, out)
}

// handleGetDefinition handles fetching a specific preference definition.
func (s *Server) handleGetDefinition(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	def, found := switcherprefs.LookupDefinition(key)
	if !found {
		s.respondWithError(w, r, http.StatusNotFound, "Preference definition not found", nil)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, s.definitionResponse(def))
}
