package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/anatolism/meditation-api-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIntroductionService records the request it received and returns a
// canned introduction.
type stubIntroductionService struct {
	text    string
	lastReq domain.IntroductionRequest
}

func (s *stubIntroductionService) GenerateIntroduction(_ context.Context, req domain.IntroductionRequest) string {
	s.lastReq = req
	return s.text
}

// stubPlannerService records its arguments and returns a canned plan.
type stubPlannerService struct {
	plan         string
	lastType     string
	lastDuration int
	lastContext  domain.PlanContext
}

func (s *stubPlannerService) CreateSessionPlan(_ context.Context, practiceType string, durationMinutes int, pctx domain.PlanContext) string {
	s.lastType = practiceType
	s.lastDuration = durationMinutes
	s.lastContext = pctx
	return s.plan
}

// stubSessionStore backs sessions with a fixed directory.
type stubSessionStore struct {
	id        string
	dir       string
	createErr error
	dirErr    error
}

func (s *stubSessionStore) Create() (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	return s.id, nil
}

func (s *stubSessionStore) Dir(string) (string, error) {
	if s.dirErr != nil {
		return "", s.dirErr
	}
	return s.dir, nil
}

// stubSynthesizer returns fixed WAV bytes or an error.
type stubSynthesizer struct {
	wav      []byte
	err      error
	lastText string
}

func (s *stubSynthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	s.lastText = text
	if s.err != nil {
		return nil, s.err
	}
	return s.wav, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCreateIntroduction_Success(t *testing.T) {
	intro := &stubIntroductionService{text: "Welcome, let's settle in."}
	sessions := &stubSessionStore{id: "session_1700000000_abcd1234", dir: t.TempDir()}
	handler := NewMeditationHandler(intro, &stubPlannerService{}, sessions, nil, testLogger())

	rec := postJSON(t, handler.CreateIntroduction, "/api/meditation/introduction", map[string]any{
		"meditation_type":  "mindfulness",
		"duration_minutes": 15,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntroductionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "session_1700000000_abcd1234", resp.SessionID)
	assert.Equal(t, "Welcome, let's settle in.", resp.IntroductionText)
	assert.Empty(t, resp.AudioURL, "audio URL should be empty when no synthesizer is wired")

	assert.Equal(t, "mindfulness", intro.lastReq.PracticeType)
	assert.Equal(t, 15, intro.lastReq.DurationMinutes)
	assert.Nil(t, intro.lastReq.Checkin)
}

func TestCreateIntroduction_CheckinPassedThrough(t *testing.T) {
	intro := &stubIntroductionService{text: "text"}
	sessions := &stubSessionStore{id: "s1", dir: t.TempDir()}
	handler := NewMeditationHandler(intro, &stubPlannerService{}, sessions, nil, testLogger())

	rec := postJSON(t, handler.CreateIntroduction, "/api/meditation/introduction", map[string]any{
		"meditation_type":  "body_scan",
		"duration_minutes": 20,
		"user_profile":     "Returning practitioner",
		"checkin_data": map[string]any{
			"agitation":  4,
			"energy":     "low",
			"emotions":   []string{"anxious", "tired"},
			"preference": "guided",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, intro.lastReq.Checkin)
	assert.Equal(t, 4, intro.lastReq.Checkin.Agitation)
	assert.Equal(t, "low", intro.lastReq.Checkin.Energy)
	assert.Equal(t, []string{"anxious", "tired"}, intro.lastReq.Checkin.Emotions)
	assert.Equal(t, "guided", intro.lastReq.Checkin.Preference)
	assert.Equal(t, "Returning practitioner", intro.lastReq.UserProfile)
}

func TestCreateIntroduction_ValidationErrors(t *testing.T) {
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "t"},
		&stubPlannerService{},
		&stubSessionStore{id: "s1", dir: os.TempDir()},
		nil,
		testLogger(),
	)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing type", map[string]any{"duration_minutes": 10}},
		{"zero duration", map[string]any{"meditation_type": "mindfulness", "duration_minutes": 0}},
		{"negative duration", map[string]any{"meditation_type": "mindfulness", "duration_minutes": -5}},
		{"agitation out of range", map[string]any{
			"meditation_type":  "mindfulness",
			"duration_minutes": 10,
			"checkin_data":     map[string]any{"agitation": 6},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, handler.CreateIntroduction, "/api/meditation/introduction", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateIntroduction_MalformedJSON(t *testing.T) {
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "t"},
		&stubPlannerService{},
		&stubSessionStore{id: "s1", dir: os.TempDir()},
		nil,
		testLogger(),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/meditation/introduction", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.CreateIntroduction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateIntroduction_SessionCreateFailure(t *testing.T) {
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "t"},
		&stubPlannerService{},
		&stubSessionStore{createErr: errors.New("disk full")},
		nil,
		testLogger(),
	)

	rec := postJSON(t, handler.CreateIntroduction, "/api/meditation/introduction", map[string]any{
		"meditation_type":  "mindfulness",
		"duration_minutes": 10,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full", "internal error detail must not leak")
}

func TestCreateIntroduction_AudioWrittenAndLinked(t *testing.T) {
	dir := t.TempDir()
	sessions := &stubSessionStore{id: "session_x", dir: dir}
	synth := &stubSynthesizer{wav: []byte("RIFFfake")}
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "breathe in"},
		&stubPlannerService{},
		sessions,
		synth,
		testLogger(),
	)

	rec := postJSON(t, handler.CreateIntroduction, "/api/meditation/introduction", map[string]any{
		"meditation_type":  "mindfulness",
		"duration_minutes": 10,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntroductionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/audio/sessions/session_x/introduction.wav", resp.AudioURL)
	assert.Equal(t, "breathe in", synth.lastText, "synthesizer should receive the introduction text")

	data, err := os.ReadFile(filepath.Join(dir, "introduction.wav"))
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFfake"), data)
}

func TestCreateIntroduction_AudioFailureDowngrades(t *testing.T) {
	sessions := &stubSessionStore{id: "session_x", dir: t.TempDir()}
	synth := &stubSynthesizer{err: errors.New("tts unavailable")}
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "breathe in"},
		&stubPlannerService{},
		sessions,
		synth,
		testLogger(),
	)

	rec := postJSON(t, handler.CreateIntroduction, "/api/meditation/introduction", map[string]any{
		"meditation_type":  "mindfulness",
		"duration_minutes": 10,
	})

	require.Equal(t, http.StatusOK, rec.Code, "audio failure must not fail the request")

	var resp IntroductionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "breathe in", resp.IntroductionText)
	assert.Empty(t, resp.AudioURL)
}

func TestCreatePlan_Success(t *testing.T) {
	planner := &stubPlannerService{plan: "1,1,0\n2,6,2\n3,14,5"}
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "t"},
		planner,
		&stubSessionStore{id: "s1", dir: os.TempDir()},
		nil,
		testLogger(),
	)

	rec := postJSON(t, handler.CreatePlan, "/api/meditation/plan", map[string]any{
		"meditation_type":  "mindfulness",
		"duration_minutes": 15,
		"context": map[string]any{
			"experience_level": "intermediate",
			"mood":             "calm",
			"time_of_day":      "evening",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1,1,0\n2,6,2\n3,14,5", resp.PlanCSV)

	assert.Equal(t, "mindfulness", planner.lastType)
	assert.Equal(t, 15, planner.lastDuration)
	assert.Equal(t, "intermediate", planner.lastContext.ExperienceLevel)
	assert.Equal(t, "calm", planner.lastContext.Mood)
	assert.Equal(t, "evening", planner.lastContext.TimeOfDay)
}

func TestCreatePlan_ContextOptional(t *testing.T) {
	planner := &stubPlannerService{plan: "1,1,0"}
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "t"},
		planner,
		&stubSessionStore{id: "s1", dir: os.TempDir()},
		nil,
		testLogger(),
	)

	rec := postJSON(t, handler.CreatePlan, "/api/meditation/plan", map[string]any{
		"meditation_type":  "breathing",
		"duration_minutes": 10,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PlanContext{}, planner.lastContext)
}

func TestCreatePlan_ValidationErrors(t *testing.T) {
	handler := NewMeditationHandler(
		&stubIntroductionService{text: "t"},
		&stubPlannerService{plan: "p"},
		&stubSessionStore{id: "s1", dir: os.TempDir()},
		nil,
		testLogger(),
	)

	rec := postJSON(t, handler.CreatePlan, "/api/meditation/plan", map[string]any{
		"duration_minutes": 15,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, handler.CreatePlan, "/api/meditation/plan", map[string]any{
		"meditation_type":  "mindfulness",
		"duration_minutes": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
