package api

import (
	"net/http"

	"github.com/CreativeUnicorns/switcherprefs"
)

func (s *Server) handleGetSizeParameters(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, r, http.StatusOK, s.store.SizeParameters(r.Context()))
}

func (s *Server) handleResetCustomizeSize(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResetCustomizeSize(r.Context()); err != nil {
		s.respondWithStoreError(w, r, "Failed to reset size customization", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, s.store.SizeParameters(r.Context()))
}

func (s *Server) handleGetThemeParameters(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, r, http.StatusOK, s.store.ThemeParameters(r.Context()))
}

func (s *Server) handleGetBlacklist(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, r, http.StatusOK, s.store.Blacklist(r.Context()))
}

func (s *Server) handleSetBlacklist(w http.ResponseWriter, r *http.Request) {
	var entries []switcherprefs.BlacklistEntry
	if err := decodeBody(w, r, &entries); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if err := s.store.SetBlacklist(r.Context(), entries); err != nil {
		s.respondWithStoreError(w, r, "Failed to set blacklist", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, s.store.Blacklist(r.Context()))
}
