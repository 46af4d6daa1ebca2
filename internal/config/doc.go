// Package config defines the application configuration structure and the
// loading logic that populates it from files and environment variables.
package config
