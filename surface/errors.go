// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "errors"

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface backends are registered
	// or none of them are available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrInvalidSize is returned for a non-positive view size.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrNoFrame is returned by Draw and EndFrame outside a frame.
	ErrNoFrame = errors.New("surface: no frame in progress")

	// ErrFrameInProgress is returned by BeginFrame before the previous
	// frame has ended.
	ErrFrameInProgress = errors.New("surface: frame already in progress")
)

// BackendNotFoundError is returned when a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError is returned when a backend is registered
// but not available on the current system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
