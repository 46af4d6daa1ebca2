// Package api contains the HTTP handlers, request/response DTOs and
// validation for the meditation endpoints. Handlers translate between the
// JSON wire format and the service layer; they hold no business logic.
package api
