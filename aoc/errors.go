package aoc

import "aochelper/internal/aocerr"

// Errors returned by Day.Run. Match them with errors.Is.
var (
	ErrMissingCredential  = aocerr.ErrMissingCredential
	ErrInvalidCredential  = aocerr.ErrInvalidCredential
	ErrPuzzleNotAvailable = aocerr.ErrPuzzleNotAvailable
	ErrFetchFailed        = aocerr.ErrFetchFailed
	ErrCacheIO            = aocerr.ErrCacheIO
)

// FetchError carries the HTTP status of a failed download. Use errors.As.
type FetchError = aocerr.FetchError
