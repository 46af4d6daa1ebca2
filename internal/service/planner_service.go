package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolism/meditation-api-backend/internal/domain"
	"github.com/anatolism/meditation-api-backend/internal/generation"
	"github.com/anatolism/meditation-api-backend/internal/redact"
	"github.com/anatolism/meditation-api-backend/internal/store"
)

// maxCandidatePhrases caps how many catalog ids are offered to the model.
const maxCandidatePhrases = 37

// Fallback plans keyed by session duration. Each is a hand-authored valid
// sequence covering the six phrase categories proportionally.
const (
	fallbackShortPlan  = "1,1,0\n2,6,2\n3,14,5\n4,32,8"
	fallbackMediumPlan = "1,1,0\n2,6,2\n3,14,5\n4,20,8\n5,26,12\n6,32,15"
	fallbackLongPlan   = "1,1,0\n2,6,3\n3,14,6\n4,20,10\n5,26,15\n6,32,20\n7,35,25"
)

// PlannerService creates phrase-based session plans as CSV text.
type PlannerService interface {
	// CreateSessionPlan returns CSV rows of sequence,phrase_id,minute for a
	// session of the given type and duration. The text is opaque to this
	// layer: rows come either from the model verbatim or from a
	// duration-keyed fallback, and are not parsed or validated here.
	// Like introduction generation, this call never fails.
	CreateSessionPlan(
		ctx context.Context,
		meditationType string,
		durationMinutes int,
		pctx domain.PlanContext,
	) string
}

// plannerServiceImpl implements the PlannerService interface.
type plannerServiceImpl struct {
	phrases   store.PhraseStore
	generator generation.TextGenerator
	logger    *slog.Logger
}

// NewPlannerService creates a PlannerService over the given phrase catalog
// and text generator. Catalog availability is the caller's problem: a failed
// catalog load should prevent this constructor from ever being reached.
func NewPlannerService(
	phrases store.PhraseStore,
	generator generation.TextGenerator,
	logger *slog.Logger,
) (PlannerService, error) {
	if phrases == nil {
		return nil, errors.New("phrase store cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &plannerServiceImpl{
		phrases:   phrases,
		generator: generator,
		logger:    logger.With("component", "planner_service"),
	}, nil
}

func (s *plannerServiceImpl) CreateSessionPlan(
	ctx context.Context,
	meditationType string,
	durationMinutes int,
	pctx domain.PlanContext,
) string {
	available := s.phrases.ListIDs(meditationType)
	if len(available) > maxCandidatePhrases {
		available = available[:maxCandidatePhrases]
	}

	s.logger.DebugContext(ctx, "planning session",
		"meditation_type", meditationType,
		"duration_minutes", durationMinutes,
		"experience", pctx.Experience(),
		"previous_sessions", pctx.History(),
		"candidate_phrases", len(available))

	prompt := buildPlanPrompt(meditationType, durationMinutes, pctx, available)

	plan, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "session plan generation failed, using fallback",
			"meditation_type", meditationType,
			"duration_minutes", durationMinutes,
			"error", redact.Error(err))
		return fallbackPlan(durationMinutes)
	}

	return plan
}

// buildPlanPrompt enumerates the six phrase-id category bands and asks the
// model for 6-10 strictly formatted CSV rows.
func buildPlanPrompt(
	meditationType string,
	durationMinutes int,
	pctx domain.PlanContext,
	availableIDs []int,
) string {
	return fmt.Sprintf(`Create a %d-minute %s session for a %s practitioner who is feeling %s in the %s.

Available phrases: %v

Categories:
- 1-5: Opening (settling, initial breath awareness)
- 6-13: Basic breath awareness
- 14-19: Deep breathing
- 20-25: Calming body/mind
- 26-31: Smiling/releasing
- 32-37: Present moment awareness

Select 6-10 phrases and return ONLY this format:
sequence,phrase_id,minute

Example:
1,1,0
2,6,2
3,14,5

Just the CSV data, nothing else.`,
		durationMinutes,
		meditationType,
		pctx.Experience(),
		pctx.CurrentMood(),
		pctx.Daytime(),
		availableIDs,
	)
}

// fallbackPlan selects the static plan for the given duration.
func fallbackPlan(durationMinutes int) string {
	switch {
	case durationMinutes <= 10:
		return fallbackShortPlan
	case durationMinutes <= 20:
		return fallbackMediumPlan
	default:
		return fallbackLongPlan
	}
}
