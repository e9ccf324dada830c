package services

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the Gemini API key is missing or was rejected.
	ErrConfiguration = errors.New("configuration error")
	// ErrAnalysisFailed covers network failures, rate limits and unusable model output.
	ErrAnalysisFailed = errors.New("analysis failed")
	// ErrInvalidInput means the submission itself cannot be analyzed.
	ErrInvalidInput = errors.New("invalid input")
)

// PDF rejections. All of them wrap ErrInvalidInput.
var (
	ErrInvalidPDF = fmt.Errorf("%w: not a readable PDF", ErrInvalidInput)
	ErrEmptyPDF   = fmt.Errorf("%w: PDF has no pages", ErrInvalidInput)
	ErrScannedPDF = fmt.Errorf("%w: PDF looks like a scanned image", ErrInvalidInput)
)

const (
	KindConfiguration  = "configuration_error"
	KindAnalysisFailed = "analysis_failed"
	KindInvalidInput   = "invalid_input"
	KindInternal       = "internal_error"
)

// ErrorKind maps an error onto one of the Kind* constants.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrAnalysisFailed):
		return KindAnalysisFailed
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
