package api

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/anatolism/meditation-api-backend/internal/api/shared"
	"github.com/anatolism/meditation-api-backend/internal/store"
	"github.com/go-chi/chi/v5"
)

// AudioHandler serves generated session audio files.
type AudioHandler struct {
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(sessions store.SessionStore, logger *slog.Logger) *AudioHandler {
	return &AudioHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// GetSessionAudio handles GET /audio/sessions/{sessionID}/{filename}.
func (h *AudioHandler) GetSessionAudio(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	filename := chi.URLParam(r, "filename")

	// Filenames are flat within a session folder; reject anything else.
	if filename == "" || filename == ".." || strings.ContainsAny(filename, `/\`) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Audio file not found")
		return
	}

	dir, err := h.sessions.Dir(sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Audio file not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to resolve session", err)
		return
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Audio file not found")
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write audio response",
			"session_id", sessionID,
			"filename", filename,
			"error", err)
	}
}
