package domain

import "errors"

// ErrNotFound indicates a transition or read was attempted against an entity
// that does not exist. Always surfaced to the caller.
var ErrNotFound = errors.New("entity not found")

// ErrInvalidTransition indicates a state transition that violates the
// application state diagram, such as deciding an already-decided application.
// Always surfaced to the caller.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrEmbeddingUnavailable indicates every embedding provider in the fallback
// chain was exhausted. Callers treat this as non-fatal and continue with
// attribute-only scoring.
var ErrEmbeddingUnavailable = errors.New("no embedding provider available")
