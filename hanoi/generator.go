package hanoi

import (
	"errors"
	"fmt"
	"iter"
)

// MaxDisks bounds n so that the move count 2^n - 1 fits in an int64.
const MaxDisks = 62

const preallocLimit = 1 << 20

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Moves lazily yields the moves that carry n disks from source to
// destination. Any n <= 0 yields nothing.
func Moves(n int, source, auxiliary, destination Peg) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		move(n, source, auxiliary, destination, yield)
	}
}

// Move the n-1 disks above the largest one out of the way onto the
// auxiliary peg, move the largest disk, then bring the n-1 disks back
// on top of it. Returns false once the consumer stops.
func move(n int, from, via, to Peg, yield func(Move) bool) bool {
	if n <= 0 {
		return true
	}

	if !move(n-1, from, to, via, yield) {
		return false
	}

	if !yield(Move{From: from, To: to}) {
		return false
	}

	return move(n-1, via, from, to, yield)
}

// Generate returns all 2^n - 1 moves of the solution in order.
func Generate(n int, source, auxiliary, destination Peg) ([]Move, error) {
	count, err := MoveCount(n)
	if err != nil {
		return nil, err
	}

	pegs := Pegs{Source: source, Auxiliary: auxiliary, Destination: destination}
	if err := pegs.Validate(); err != nil {
		return nil, err
	}

	moves := make([]Move, 0, min(count, preallocLimit))
	for m := range Moves(n, source, auxiliary, destination) {
		moves = append(moves, m)
	}

	return moves, nil
}

// MoveCount is the length of the solution for n disks, 2^n - 1.
func MoveCount(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: disk count must not be negative, got %d", ErrInvalidArgument, n)
	}

	if n > MaxDisks {
		return 0, fmt.Errorf("%w: disk count must be at most %d, got %d", ErrInvalidArgument, MaxDisks, n)
	}

	return 1<<uint(n) - 1, nil
}
