package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/anatolism/meditation-api-backend/internal/api/shared"
	"github.com/anatolism/meditation-api-backend/internal/domain"
	"github.com/anatolism/meditation-api-backend/internal/redact"
	"github.com/anatolism/meditation-api-backend/internal/service"
	"github.com/anatolism/meditation-api-backend/internal/store"
	"github.com/go-playground/validator/v10"
)

// introductionAudioFilename is the WAV name stored in each session folder.
const introductionAudioFilename = "introduction.wav"

// AudioSynthesizer produces WAV audio for introduction text. Nil when the
// voice path is disabled.
type AudioSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// CheckinRequest carries the optional user check-in signals.
type CheckinRequest struct {
	Agitation  int      `json:"agitation" validate:"omitempty,min=1,max=5"`
	Energy     string   `json:"energy"`
	Emotions   []string `json:"emotions"`
	Preference string   `json:"preference"`
}

// IntroductionRequest represents the request body for creating a session
// introduction.
type IntroductionRequest struct {
	MeditationType  string          `json:"meditation_type" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0"`
	UserProfile     string          `json:"user_profile"`
	CheckinData     *CheckinRequest `json:"checkin_data,omitempty"`
}

// IntroductionResponse represents the response data for a session
// introduction. AudioURL is empty when audio generation is disabled or
// failed; the request still succeeds.
type IntroductionResponse struct {
	SessionID        string `json:"session_id"`
	IntroductionText string `json:"introduction_text"`
	AudioURL         string `json:"audio_url"`
}

// PlanContextRequest carries the optional planning signals.
type PlanContextRequest struct {
	ExperienceLevel  string `json:"experience_level"`
	Mood             string `json:"mood"`
	TimeOfDay        string `json:"time_of_day"`
	PreviousSessions string `json:"previous_sessions"`
}

// PlanRequest represents the request body for creating a session plan.
type PlanRequest struct {
	MeditationType  string              `json:"meditation_type" validate:"required"`
	DurationMinutes int                 `json:"duration_minutes" validate:"required,gt=0"`
	Context         *PlanContextRequest `json:"context,omitempty"`
}

// PlanResponse carries the opaque CSV session plan.
type PlanResponse struct {
	PlanCSV string `json:"plan_csv"`
}

// MeditationHandler handles meditation content HTTP requests.
type MeditationHandler struct {
	introductions service.IntroductionService
	planner       service.PlannerService
	sessions      store.SessionStore
	synthesizer   AudioSynthesizer
	logger        *slog.Logger
	validator     *validator.Validate
}

// NewMeditationHandler creates a new MeditationHandler. synthesizer may be
// nil, which disables the audio path.
func NewMeditationHandler(
	introductions service.IntroductionService,
	planner service.PlannerService,
	sessions store.SessionStore,
	synthesizer AudioSynthesizer,
	logger *slog.Logger,
) *MeditationHandler {
	return &MeditationHandler{
		introductions: introductions,
		planner:       planner,
		sessions:      sessions,
		synthesizer:   synthesizer,
		logger:        logger,
		validator:     validator.New(),
	}
}

// CreateIntroduction handles POST /api/meditation/introduction requests.
//
// Generation failure never surfaces here: the service layer guarantees
// usable introduction text. Only session bookkeeping errors produce an
// error response.
func (h *MeditationHandler) CreateIntroduction(w http.ResponseWriter, r *http.Request) {
	var req IntroductionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.logger.Info("creating introduction",
		"meditation_type", req.MeditationType,
		"duration_minutes", req.DurationMinutes)

	sessionID, err := h.sessions.Create()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create session", err)
		return
	}

	text := h.introductions.GenerateIntroduction(r.Context(), introductionToDomain(req))

	audioURL := h.generateSessionAudio(r.Context(), sessionID, text)

	shared.RespondWithJSON(w, r, http.StatusOK, IntroductionResponse{
		SessionID:        sessionID,
		IntroductionText: text,
		AudioURL:         audioURL,
	})
}

// CreatePlan handles POST /api/meditation/plan requests.
func (h *MeditationHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var pctx domain.PlanContext
	if req.Context != nil {
		pctx = domain.PlanContext{
			ExperienceLevel:  req.Context.ExperienceLevel,
			Mood:             req.Context.Mood,
			TimeOfDay:        req.Context.TimeOfDay,
			PreviousSessions: req.Context.PreviousSessions,
		}
	}

	plan := h.planner.CreateSessionPlan(r.Context(), req.MeditationType, req.DurationMinutes, pctx)

	shared.RespondWithJSON(w, r, http.StatusOK, PlanResponse{PlanCSV: plan})
}

// generateSessionAudio runs the optional TTS path and stores the result in
// the session folder. Any failure downgrades to an empty audio URL; audio is
// best-effort and must not fail the request.
func (h *MeditationHandler) generateSessionAudio(ctx context.Context, sessionID, text string) string {
	if h.synthesizer == nil {
		return ""
	}

	wav, err := h.synthesizer.Synthesize(ctx, text)
	if err != nil {
		h.logger.Warn("audio generation failed, continuing without audio",
			"session_id", sessionID,
			"error", redact.Error(err))
		return ""
	}

	dir, err := h.sessions.Dir(sessionID)
	if err != nil {
		h.logger.Warn("session directory vanished before audio write",
			"session_id", sessionID,
			"error", err)
		return ""
	}

	if err := os.WriteFile(filepath.Join(dir, introductionAudioFilename), wav, 0o644); err != nil {
		h.logger.Warn("failed to store session audio",
			"session_id", sessionID,
			"error", err)
		return ""
	}

	return "/audio/sessions/" + sessionID + "/" + introductionAudioFilename
}

// introductionToDomain converts the wire request into the domain type.
func introductionToDomain(req IntroductionRequest) domain.IntroductionRequest {
	out := domain.IntroductionRequest{
		PracticeType:    req.MeditationType,
		DurationMinutes: req.DurationMinutes,
		UserProfile:     req.UserProfile,
	}
	if req.CheckinData != nil {
		out.Checkin = &domain.CheckinData{
			Agitation:  req.CheckinData.Agitation,
			Energy:     req.CheckinData.Energy,
			Emotions:   req.CheckinData.Emotions,
			Preference: req.CheckinData.Preference,
		}
	}
	return out
}
