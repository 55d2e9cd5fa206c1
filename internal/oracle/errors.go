package oracle

import "errors"

var (
	// ErrNotConfigured indicates no credential is set; callers should run in
	// template-only mode.
	ErrNotConfigured = errors.New("generative backend not configured")

	// ErrUnknownProvider indicates generator.provider names no backend.
	ErrUnknownProvider = errors.New("unknown generative backend provider")

	// ErrEmptyContent indicates the backend answered without any content.
	ErrEmptyContent = errors.New("generative backend returned no content")
)
