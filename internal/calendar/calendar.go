// Package calendar decides whether a puzzle day has been released.
package calendar

import (
	"fmt"
	"time"

	"aochelper/internal/aocerr"
)

// Puzzle range.
const (
	FirstYear = 2015
	FirstDay  = 1
	LastDay   = 25
)

// SiteZone is the puzzle site's release time zone (US Eastern, no DST in December).
var SiteZone = time.FixedZone("UTC-5", -5*60*60)

// ReleaseTime is the instant the puzzle for year/day unlocks.
func ReleaseTime(year, day int) time.Time {
	return time.Date(year, time.December, day, 0, 0, 0, 0, SiteZone)
}

// InRange reports whether year/day can name a puzzle at all.
func InRange(year, day int) bool {
	return year >= FirstYear && day >= FirstDay && day <= LastDay
}

// Check returns an error matching aocerr.ErrPuzzleNotAvailable when year/day
// is out of range or not yet released at now.
func Check(year, day int, now time.Time) error {
	if !InRange(year, day) {
		return fmt.Errorf("%w: no puzzle on %d day %d", aocerr.ErrPuzzleNotAvailable, year, day)
	}
	release := ReleaseTime(year, day)
	if now.Before(release) {
		return fmt.Errorf("%w: %d day %d unlocks at %s", aocerr.ErrPuzzleNotAvailable, year, day, release.Format(time.RFC3339))
	}
	return nil
}
