package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/anatolism/meditation-api-backend/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAudioRouter(sessions store.SessionStore) http.Handler {
	handler := NewAudioHandler(sessions, testLogger())
	r := chi.NewRouter()
	r.Get("/audio/sessions/{sessionID}/{filename}", handler.GetSessionAudio)
	return r
}

func TestGetSessionAudio_ServesWAV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "introduction.wav"), []byte("RIFFdata"), 0o644))

	router := newAudioRouter(&stubSessionStore{dir: dir})

	req := httptest.NewRequest(http.MethodGet, "/audio/sessions/session_x/introduction.wav", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))
	assert.Equal(t, "RIFFdata", rec.Body.String())
}

func TestGetSessionAudio_UnknownSession(t *testing.T) {
	router := newAudioRouter(&stubSessionStore{dirErr: store.ErrSessionNotFound})

	req := httptest.NewRequest(http.MethodGet, "/audio/sessions/nope/introduction.wav", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionAudio_MissingFile(t *testing.T) {
	router := newAudioRouter(&stubSessionStore{dir: t.TempDir()})

	req := httptest.NewRequest(http.MethodGet, "/audio/sessions/session_x/missing.wav", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionAudio_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "introduction.wav"), []byte("RIFFdata"), 0o644))
	router := newAudioRouter(&stubSessionStore{dir: dir})

	req := httptest.NewRequest(http.MethodGet, "/audio/sessions/session_x/..", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
