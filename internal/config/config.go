package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Voice   VoiceConfig   `mapstructure:"voice"`
	Phrase  PhraseConfig  `mapstructure:"phrase" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the Gemini text-generation client.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Absence is a fatal
	// configuration error at client construction.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName selects the generation model. When empty, the model
	// registry's default entry is used.
	ModelName string `mapstructure:"model_name"`

	// MaxRetries is the total number of generation attempts per call.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the fixed pause between attempts.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// VoiceConfig contains settings for the optional text-to-speech path.
// Synthesis is disabled by default; when disabled the introduction endpoint
// returns an empty audio URL.
type VoiceConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	ModelName string `mapstructure:"model_name"`
	VoiceName string `mapstructure:"voice_name"`
}

// PhraseConfig locates the phrase catalog consumed by the session planner.
type PhraseConfig struct {
	CSVPath string `mapstructure:"csv_path" validate:"required"`
}

// SessionConfig controls filesystem session bookkeeping.
type SessionConfig struct {
	AudioRoot string `mapstructure:"audio_root" validate:"required"`

	// KeepRecent is how many session folders survive cleanup.
	KeepRecent int `mapstructure:"keep_recent" validate:"gt=0"`
}
