// Package voice implements text-to-speech synthesis of meditation
// introductions using Gemini's TTS models. The path is optional: the
// application only constructs a Synthesizer when voice is enabled in
// configuration, and callers treat synthesis failure as non-fatal.
package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolism/meditation-api-backend/internal/config"
	"github.com/anatolism/meditation-api-backend/internal/generation"
	"google.golang.org/genai"
)

// readingInstructions precede the session text in every TTS request to keep
// the delivery calm and even.
const readingInstructions = "Read aloud in a warm and friendly tone for calming meditation students. " +
	"Don't change intonation much, very calm, smooth and slow. " +
	"Use a mildly British / Chinese / Indeterminate accent."

// ErrNoAudio is returned when the stream completed without any audio chunks.
var ErrNoAudio = errors.New("no audio data received")

// Synthesizer turns introduction text into WAV audio through the Gemini
// streaming API.
type Synthesizer struct {
	logger *slog.Logger
	client *genai.Client
	model  string
	voice  string
}

// New establishes the TTS session. The API key requirement matches the text
// generator: absence is a fatal configuration error.
func New(
	ctx context.Context,
	logger *slog.Logger,
	apiKey string,
	cfg config.VoiceConfig,
) (*Synthesizer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create TTS client: %v", generation.ErrInvalidConfig, err)
	}

	model := cfg.ModelName
	if model == "" {
		model = config.DefaultVoiceModelName
	}
	voice := cfg.VoiceName
	if voice == "" {
		voice = config.DefaultVoiceName
	}

	return &Synthesizer{
		logger: logger,
		client: client,
		model:  model,
		voice:  voice,
	}, nil
}

// Synthesize streams TTS audio for the given text and returns it framed as a
// WAV file. The reading instructions are prepended as a separate part.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(readingInstructions),
			genai.NewPartFromText(text),
		}, genai.RoleUser),
	}

	speechConfig := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr(float32(1)),
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: s.voice,
				},
			},
		},
	}

	s.logger.InfoContext(ctx, "starting audio synthesis",
		"model", s.model,
		"voice", s.voice,
		"text_length", len(text))

	var pcm []byte
	for resp, err := range s.client.Models.GenerateContentStream(ctx, s.model, contents, speechConfig) {
		if err != nil {
			return nil, fmt.Errorf("TTS stream failed: %w", err)
		}
		pcm = append(pcm, inlineAudio(resp)...)
	}

	if len(pcm) == 0 {
		return nil, ErrNoAudio
	}

	s.logger.InfoContext(ctx, "audio synthesis complete", "pcm_bytes", len(pcm))

	return encodeWAV(pcm), nil
}

// inlineAudio extracts the inline audio bytes from one stream chunk, if any.
func inlineAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil
	}
	inline := content.Parts[0].InlineData
	if inline == nil {
		return nil
	}
	return inline.Data
}
