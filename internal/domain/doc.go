// Package domain contains the core value types of the meditation service:
// session requests, user check-in signals, and planning context. These types
// carry no behavior beyond validation and defaulting; they parameterize
// prompt construction and live for a single request.
package domain
