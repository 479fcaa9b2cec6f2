package service

import "errors"

var (
	// ErrInvalidPortion is returned when a manual portion is non-positive or
	// above the manual-entry bound.
	ErrInvalidPortion = errors.New("invalid portion")

	// ErrFoodNotFound is returned when a (name, category) pair does not
	// reference a catalog entry.
	ErrFoodNotFound = errors.New("food not found in catalog")

	// ErrTemplateNotFound is returned for an unknown meal template name.
	ErrTemplateNotFound = errors.New("meal template not found")

	// ErrPersistence wraps storage-layer failures. They are surfaced to the
	// caller and never retried.
	ErrPersistence = errors.New("persistence failure")

	// ErrExport wraps document-rendering failures. CSV export has no
	// rendering dependency and is unaffected.
	ErrExport = errors.New("export failure")

	// ErrResourceLoad is returned when a required asset (the PDF font) is
	// missing. Document export degrades; everything else keeps working.
	ErrResourceLoad = errors.New("resource load failure")
)
