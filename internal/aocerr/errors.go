// Package aocerr holds the error taxonomy shared by the session, cache and
// client layers.
package aocerr

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates no session token could be resolved.
	ErrMissingCredential = errors.New("no session ID specified")
	// ErrInvalidCredential indicates the puzzle site rejected the session token.
	ErrInvalidCredential = errors.New("session ID rejected by puzzle site")
	// ErrPuzzleNotAvailable indicates the puzzle has not unlocked yet or never existed.
	ErrPuzzleNotAvailable = errors.New("puzzle not available")
	// ErrFetchFailed indicates any other failed fetch. See FetchError.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrCacheIO indicates a local filesystem failure in the input cache.
	ErrCacheIO = errors.New("input cache io")
)

// FetchError describes an unsuccessful fetch. StatusCode is zero when the
// request never produced a response.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch failed: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch failed: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch failed: status %d", e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as ErrFetchFailed.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// CacheIO wraps a filesystem error so it matches ErrCacheIO.
func CacheIO(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrCacheIO, op, path, err)
}
