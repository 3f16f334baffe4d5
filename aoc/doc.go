// Package aoc fetches, caches and checks solutions to daily puzzles.
//
// # Session
//
// Downloading inputs needs the value of the site's "session" cookie. It is
// resolved, first non-empty wins, from:
//
//   - WithSession
//   - the AOC_SESSION_ID environment variable (see WithEnv)
//   - the "session-id" key of a JSON config file, only with WithConfigFile
//
// A missing session only matters when an input has to be downloaded.
//
// # Usage
//
//	day := aoc.New(2015, 1)
//	part1 := aoc.NewPuzzle(1, countFloors).WithExample("(())", "0")
//	fmt.Print(day.Test(part1))
//	answer, err := day.Run(ctx, part1)
//
// Inputs are cached under inputs/{year}/day{day}.txt and downloaded at
// most once.
package aoc
