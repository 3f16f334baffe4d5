// Package cache maps a (year, day) pair to its puzzle input, fetching and
// persisting it on the first miss.
package cache

import (
	"fmt"

	"aochelper/internal/aocerr"
	"aochelper/internal/calendar"
)

// Key identifies one puzzle input.
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string { return fmt.Sprintf("%d/day%d", k.Year, k.Day) }

// Validate reports an out-of-range key as aocerr.ErrPuzzleNotAvailable.
func (k Key) Validate() error {
	if !calendar.InRange(k.Year, k.Day) {
		return fmt.Errorf("%w: no puzzle for %s", aocerr.ErrPuzzleNotAvailable, k)
	}
	return nil
}

// Input is the raw text fetched for Key.
type Input struct {
	Key  Key
	Text string
}
