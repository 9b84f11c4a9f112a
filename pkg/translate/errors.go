package translate

import (
	"errors"

	"github.com/angeloszaimis/libtranslate/internal/dispatcher"
)

var (
	ErrTargetIsAuto       = errors.New("target language cannot be auto")
	ErrTargetEqualsSource = errors.New("target language equals source language")
	ErrUnknownLanguage    = errors.New("unknown language")

	ErrEmptyRegistrationSet = dispatcher.ErrEmptyRegistrationSet
	ErrInvalidServiceName   = dispatcher.ErrInvalidServiceName
	ErrNoAvailableService   = dispatcher.ErrNoAvailableService
)

// NoAvailableError is returned when no backend could serve a call.
type NoAvailableError = dispatcher.NoAvailableError
