package aoc

import (
	"fmt"
	"strings"
)

// Result is the outcome of one example.
type Result struct {
	Index    int // 1-based position in the puzzle's examples
	Input    string
	Expected string
	Actual   string
	Passed   bool
}

// Report lists example results in the order the examples were given.
type Report struct {
	Year    int
	Day     int
	Part    int
	Results []Result
}

// Inconclusive reports whether there were no examples to check.
func (r Report) Inconclusive() bool { return len(r.Results) == 0 }

// AllPassed reports whether no example failed. It is true for an empty
// report; check Inconclusive first.
func (r Report) AllPassed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failing results.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Testing day %d of AOC %d, part %d\n", r.Day, r.Year, r.Part)
	if r.Inconclusive() {
		b.WriteString("  no examples\n")
		return b.String()
	}
	for _, res := range r.Results {
		if res.Passed {
			fmt.Fprintf(&b, "  Example %d: ok %q\n", res.Index, res.Actual)
			continue
		}
		fmt.Fprintf(&b, "  Example %d: FAIL got %q, want %q\n", res.Index, res.Actual, res.Expected)
	}
	return b.String()
}
