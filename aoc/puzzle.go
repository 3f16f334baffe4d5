package aoc

import (
	"fmt"
	"slices"
)

// Example is a sample input with its expected displayed answer.
type Example struct {
	Input    string
	Expected string
}

// Solvable is what Day.Test and Day.Run need from a puzzle part.
type Solvable interface {
	Part() int
	Examples() []Example
	Solve(input string) string
}

// Puzzle is one part of a day's puzzle. The zero value is not useful; build
// one with NewPuzzle. Puzzle values are immutable: the With methods return
// copies.
type Puzzle[T any] struct {
	part     int
	solve    func(input string) T
	examples []Example
}

// NewPuzzle describes part (1 or 2) solved by solve. The answer is displayed
// with fmt.Sprint, so T may implement fmt.Stringer.
func NewPuzzle[T any](part int, solve func(input string) T) Puzzle[T] {
	return Puzzle[T]{part: part, solve: solve}
}

// WithExample returns a copy of p with one more example.
func (p Puzzle[T]) WithExample(input, expected string) Puzzle[T] {
	return p.WithExamples(Example{Input: input, Expected: expected})
}

// WithExamples returns a copy of p with examples appended in order.
func (p Puzzle[T]) WithExamples(examples ...Example) Puzzle[T] {
	out := p
	out.examples = append(slices.Clone(p.examples), examples...)
	return out
}

// Part returns the part number.
func (p Puzzle[T]) Part() int { return p.part }

// Examples returns a copy of the examples.
func (p Puzzle[T]) Examples() []Example { return slices.Clone(p.examples) }

// Answer runs the solver and returns its typed result.
func (p Puzzle[T]) Answer(input string) T { return p.solve(input) }

// Solve runs the solver and returns the displayed result.
func (p Puzzle[T]) Solve(input string) string { return fmt.Sprint(p.solve(input)) }

// Parsed composes a parser with a solver that takes the parsed form.
//
//	aoc.NewPuzzle(1, aoc.Parsed(strings.Fields, countWords))
func Parsed[In, Out any](parse func(string) In, solve func(In) Out) func(string) Out {
	return func(input string) Out { return solve(parse(input)) }
}

var _ Solvable = Puzzle[int]{}
