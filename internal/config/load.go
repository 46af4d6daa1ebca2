package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before any config file or environment variable is
// considered. The retry defaults mirror the generation client's contract:
// three attempts with a fixed five-second pause.
const (
	DefaultPort              = 8000
	DefaultLogLevel          = "info"
	DefaultMaxRetries        = 3
	DefaultRetryDelaySeconds = 5
	DefaultPhraseCSVPath     = "phrase_list_with_audio.csv"
	DefaultAudioRoot         = "audio/sessions"
	DefaultKeepRecent        = 5
	DefaultVoiceModelName    = "gemini-2.5-flash-preview-tts"
	DefaultVoiceName         = "Aoede"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the MEDITATION_ prefix
// (nested keys joined by underscores, e.g. MEDITATION_SERVER_PORT).
// Environment variables take precedence over file values.
//
// GOOGLE_API_KEY is honored as a fallback source for the Gemini API key so
// the service runs with the same environment the reference deployment used.
//
// Returns a populated, validated Config or an error describing what failed.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.max_retries", DefaultMaxRetries)
	v.SetDefault("llm.retry_delay_seconds", DefaultRetryDelaySeconds)
	v.SetDefault("voice.enabled", false)
	v.SetDefault("voice.model_name", DefaultVoiceModelName)
	v.SetDefault("voice.voice_name", DefaultVoiceName)
	v.SetDefault("phrase.csv_path", DefaultPhraseCSVPath)
	v.SetDefault("session.audio_root", DefaultAudioRoot)
	v.SetDefault("session.keep_recent", DefaultKeepRecent)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and environment cover everything.
	}

	v.SetEnvPrefix("MEDITATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The reference deployment supplies the key as GOOGLE_API_KEY.
	if err := v.BindEnv("llm.gemini_api_key", "MEDITATION_LLM_GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
