package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolism/meditation-api-backend/internal/domain"
	"github.com/anatolism/meditation-api-backend/internal/generation"
	"github.com/anatolism/meditation-api-backend/internal/redact"
)

// IntroductionService produces personalized introduction text for a session.
type IntroductionService interface {
	// GenerateIntroduction returns introduction text for the request. It
	// always succeeds: when generation fails after retries, a deterministic
	// fallback sentence referencing the duration and practice type is
	// returned instead.
	GenerateIntroduction(ctx context.Context, req domain.IntroductionRequest) string
}

// introductionServiceImpl implements the IntroductionService interface.
type introductionServiceImpl struct {
	generator generation.TextGenerator
	logger    *slog.Logger
}

// NewIntroductionService creates an IntroductionService backed by the given
// text generator.
func NewIntroductionService(
	generator generation.TextGenerator,
	logger *slog.Logger,
) (IntroductionService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &introductionServiceImpl{
		generator: generator,
		logger:    logger.With("component", "introduction_service"),
	}, nil
}

func (s *introductionServiceImpl) GenerateIntroduction(
	ctx context.Context,
	req domain.IntroductionRequest,
) string {
	prompt := buildIntroductionPrompt(req)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		// Retries are already exhausted inside the generator; from here the
		// caller gets the static fallback, never an error.
		s.logger.ErrorContext(ctx, "introduction generation failed, using fallback",
			"practice_type", req.PracticeType,
			"duration_minutes", req.DurationMinutes,
			"error", redact.Error(err))
		return fallbackIntroduction(req)
	}

	return text
}

// buildIntroductionPrompt assembles the teacher-persona prompt from the
// request. Missing check-in signals render as their neutral placeholders
// ("unknown" agitation, "normal" energy).
func buildIntroductionPrompt(req domain.IntroductionRequest) string {
	agitation := "unknown"
	energy := "normal"
	emotions := "[]"
	preference := "auto"

	if c := req.Checkin; c != nil {
		if c.Agitation != 0 {
			agitation = fmt.Sprintf("%d", c.Agitation)
		}
		if c.Energy != "" {
			energy = c.Energy
		}
		if len(c.Emotions) > 0 {
			emotions = strings.Join(c.Emotions, ", ")
		}
		if c.Preference != "" {
			preference = c.Preference
		}
	}

	return fmt.Sprintf(`You are a wise, experienced meditation teacher starting a session with a student.

STUDENT CONTEXT:
- Profile: %s
- Today's practice: %s for %d minutes
- Current agitation level: %s/5
- Energy level: %s
- Present emotions: %s
- Preference: %s

INSTRUCTIONS:
Create a warm, personalized introduction (30-45 words) that:
1. Acknowledges their current state with compassion
2. Sets realistic expectations for the session
3. Gives initial settling guidance
4. Feels personal and encouraging

Be natural and authentic, not overly spiritual. Speak directly to them.

Examples of good tone:
- "I can sense you're carrying some stress today. That's exactly why we're here..."
- "Your mind seems quite active right now, which is perfectly normal..."
- "I notice you're feeling a bit low energy - let's work with that..."

Generate the introduction:`,
		req.Profile(),
		req.PracticeType,
		req.DurationMinutes,
		agitation,
		energy,
		emotions,
		preference,
	)
}

// fallbackIntroduction is the static substitute used when generation is
// unavailable. It references only the duration and practice type.
func fallbackIntroduction(req domain.IntroductionRequest) string {
	return fmt.Sprintf(
		"Welcome to your %d-minute %s practice. Take a moment to settle in and let's begin this journey together.",
		req.DurationMinutes,
		req.PracticeType,
	)
}
