package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CreativeUnicorns/switcherprefs"
)

type preferenceResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Default   string `json:"default"`
	Persisted bool   `json:"persisted"`
}

type setPreferenceRequest struct {
	Value *string `json:"value"`
}

type writtenResponse struct {
	Written []string `json:"written"`
}

func (s *Server) handleGetAllPreferences(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.All(r.Context())
	if err != nil {
		s.respondWithStoreError(w, r, "Failed to get preferences", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, all)
}

func (s *Server) handleResetAllPreferences(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResetAll(r.Context()); err != nil {
		s.respondWithStoreError(w, r, "Failed to reset preferences", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetPreference(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if _, ok := switcherprefs.LookupDefinition(key); !ok {
		s.respondWithError(w, r, http.StatusNotFound, "Preference not defined", switcherprefs.ErrPreferenceNotDefined)
		return
	}
	s.writePreference(w, r, http.StatusOK, key)
}

func (s *Server) handleSetPreference(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req setPreferenceRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if req.Value == nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", switcherprefs.ErrInvalidValue)
		return
	}

	if err := s.store.SetString(r.Context(), key, *req.Value); err != nil {
		s.respondWithStoreError(w, r, "Failed to set preference", err)
		return
	}
	s.writePreference(w, r, http.StatusOK, key)
}

func (s *Server) handleDeletePreference(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if _, ok := switcherprefs.LookupDefinition(key); !ok {
		s.respondWithError(w, r, http.StatusNotFound, "Preference not defined", switcherprefs.ErrPreferenceNotDefined)
		return
	}
	if err := s.store.Remove(r.Context(), key); err != nil {
		s.respondWithStoreError(w, r, "Failed to remove preference", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writePreference(w http.ResponseWriter, r *http.Request, status int, key string) {
	ctx := r.Context()
	value, err := s.store.GetString(ctx, key)
	if err != nil {
		s.respondWithStoreError(w, r, "Failed to get preference", err)
		return
	}
	all, err := s.store.All(ctx)
	if err != nil {
		s.respondWithStoreError(w, r, "Failed to get preference", err)
		return
	}
	_, persisted := all[key]
	def, _ := s.store.Default(key)
	s.respondWithJSON(w, r, status, preferenceResponse{
		Key:       key,
		Value:     value,
		Default:   def,
		Persisted: persisted,
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, r, http.StatusOK, s.store.Snapshot(r.Context()))
}

// handleApplySettings merges the request body over the current snapshot, so
// omitted fields keep their value.
func (s *Server) handleApplySettings(w http.ResponseWriter, r *http.Request) {
	st := s.store.Snapshot(r.Context())
	if err := decodeBody(w, r, &st); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	written, err := s.store.Apply(r.Context(), st)
	if err != nil {
		s.respondWithStoreError(w, r, "Failed to apply settings", err)
		return
	}
	if written == nil {
		written = []string{}
	}
	s.respondWithJSON(w, r, http.StatusOK, writtenResponse{Written: written})
}

func (s *Server) handleMigrate(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Migrate(r.Context()); err != nil {
		s.respondWithStoreError(w, r, "Migration failed", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, map[string]string{
		"preferencesVersion": s.store.AppVersion(),
	})
}
