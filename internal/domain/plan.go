package domain

// Plan context defaults applied when a field is not reported.
const (
	DefaultExperienceLevel  = "beginner"
	DefaultMood             = "neutral"
	DefaultTimeOfDay        = "any"
	DefaultPreviousSessions = "none"
)

// PlanContext carries the optional user signals that personalize a session
// plan. The zero value is usable; accessors substitute defaults.
type PlanContext struct {
	ExperienceLevel  string `json:"experience_level"`
	Mood             string `json:"mood"`
	TimeOfDay        string `json:"time_of_day"`
	PreviousSessions string `json:"previous_sessions"`
}

// Experience returns the experience level, defaulting to "beginner".
func (p PlanContext) Experience() string {
	if p.ExperienceLevel == "" {
		return DefaultExperienceLevel
	}
	return p.ExperienceLevel
}

// CurrentMood returns the mood, defaulting to "neutral".
func (p PlanContext) CurrentMood() string {
	if p.Mood == "" {
		return DefaultMood
	}
	return p.Mood
}

// Daytime returns the time of day, defaulting to "any".
func (p PlanContext) Daytime() string {
	if p.TimeOfDay == "" {
		return DefaultTimeOfDay
	}
	return p.TimeOfDay
}

// History returns the previous-session pattern, defaulting to "none".
func (p PlanContext) History() string {
	if p.PreviousSessions == "" {
		return DefaultPreviousSessions
	}
	return p.PreviousSessions
}
