// Package redact strips sensitive values from strings before they are logged
// or returned in error responses. The remote-API errors this service handles
// can echo request URLs that carry the Gemini API key; redaction keeps that
// key out of log aggregation.
package redact

import "regexp"

// RedactedKeyPlaceholder replaces anything that looks like an API key.
const RedactedKeyPlaceholder = "[REDACTED_KEY]"

// Precompiled patterns for credentials that can appear in Gemini error text.
var (
	// Google API keys have a fixed AIza prefix and 35 tail characters.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// key=... query parameters on echoed request URLs.
	keyParamRegex = regexp.MustCompile(`([?&]key=)[^&\s]+`)

	// Generic key/token/secret assignments in error detail strings.
	apiKeyRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := googleKeyRegex.ReplaceAllString(input, RedactedKeyPlaceholder)
	result = keyParamRegex.ReplaceAllString(result, "${1}"+RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "${1}${2}"+RedactedKeyPlaceholder)
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
