// Package store defines the persistence-facing interfaces consumed by the
// service layer: the phrase catalog backing session planning and the
// filesystem session bookkeeping. Implementations live under
// internal/platform.
package store
