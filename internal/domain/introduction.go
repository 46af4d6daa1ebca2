package domain

import "errors"

// Common validation errors for introduction requests.
var (
	ErrEmptyPracticeType = errors.New("practice type cannot be empty")
	ErrInvalidDuration   = errors.New("duration must be a positive number of minutes")
	ErrInvalidAgitation  = errors.New("agitation level must be between 1 and 5")
)

// DefaultUserProfile substitutes for an absent profile string when building
// introduction prompts.
const DefaultUserProfile = "New meditator"

// CheckinData holds the user's current-state signals collected before a
// session. All fields are optional; prompt construction substitutes neutral
// defaults for anything missing.
type CheckinData struct {
	// Agitation is a 1-5 scale, 0 meaning not reported.
	Agitation int `json:"agitation"`

	// Energy is a descriptor such as "sleepy", "normal" or "wired".
	Energy string `json:"energy"`

	// Emotions lists what the user reports feeling right now.
	Emotions []string `json:"emotions"`

	// Preference names a practice the user leans towards, or "auto".
	Preference string `json:"preference"`
}

// Validate checks the check-in signals for out-of-range values.
func (c *CheckinData) Validate() error {
	if c.Agitation != 0 && (c.Agitation < 1 || c.Agitation > 5) {
		return ErrInvalidAgitation
	}
	return nil
}

// IntroductionRequest describes one request for personalized introduction
// text. Checkin is nil when the user skipped the check-in flow.
type IntroductionRequest struct {
	PracticeType    string       `json:"meditation_type"`
	DurationMinutes int          `json:"duration_minutes"`
	UserProfile     string       `json:"user_profile"`
	Checkin         *CheckinData `json:"checkin_data,omitempty"`
}

// Validate checks if the IntroductionRequest has valid data.
// Returns an error if any field fails validation.
func (r *IntroductionRequest) Validate() error {
	if r.PracticeType == "" {
		return ErrEmptyPracticeType
	}
	if r.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if r.Checkin != nil {
		return r.Checkin.Validate()
	}
	return nil
}

// Profile returns the user profile string, defaulting when absent.
func (r *IntroductionRequest) Profile() string {
	if r.UserProfile == "" {
		return DefaultUserProfile
	}
	return r.UserProfile
}
