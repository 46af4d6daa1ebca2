// Package service contains the content orchestrators: components that turn a
// structured request into a generation prompt and guarantee a usable result
// even when remote generation fails. This is the only layer permitted to
// swallow an escalated generation error; it substitutes deterministic
// fallbacks so its callers never observe an AI-provider failure.
package service
