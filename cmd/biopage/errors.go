package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrInvalidLocale  = errors.New("unsupported locale")
	ErrNoMessages     = errors.New("no messages file")
	ErrReadMessages   = errors.New("cannot read messages file")
	ErrWriteOutput    = errors.New("cannot write output")
	ErrNoImagesDir    = errors.New("no image directory")
	ErrInvalidWorkers = errors.New("invalid workers count")
)
