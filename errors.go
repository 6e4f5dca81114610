package lingo

import "errors"

// Sentinel errors for engine operations.
var (
	// ErrEmptyLocale is returned when no locale could be determined for an
	// operation, either from the explicit argument or the engine state.
	ErrEmptyLocale = errors.New("lingo: locale cannot be empty")

	// ErrEmptyNamespace is returned when a namespace name is blank.
	ErrEmptyNamespace = errors.New("lingo: namespace cannot be empty")

	// ErrUnknownNamespace is returned by LoadNamespace when no resolver is
	// registered under the requested name.
	ErrUnknownNamespace = errors.New("lingo: unknown namespace")

	// ErrNilResolver is returned when a nil resolver is supplied to an option.
	ErrNilResolver = errors.New("lingo: resolver cannot be nil")

	// ErrNotStruct is returned by the translation binder when the target is
	// not a struct (or a pointer to one, where mutation is required).
	ErrNotStruct = errors.New("lingo: target must be a struct")

	// ErrNilEngine is returned by helpers that require a constructed engine.
	ErrNilEngine = errors.New("lingo: engine is not provided")
)
