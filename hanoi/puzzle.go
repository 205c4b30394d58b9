package hanoi

import (
	"iter"
	"slices"

	guuid "github.com/google/uuid"
)

type Puzzle struct {
	ID    guuid.UUID `json:"id" yaml:"id"`
	Disks int        `json:"disks" yaml:"disks"`
	Pegs  Pegs       `json:"pegs" yaml:"pegs"`
	Moves []Move     `json:"moves" yaml:"moves"`
}

func NewPuzzle(disks int, pegs Pegs) (*Puzzle, error) {
	if _, err := MoveCount(disks); err != nil {
		return nil, err
	}

	if err := pegs.Validate(); err != nil {
		return nil, err
	}

	return &Puzzle{
		ID:    guuid.New(),
		Disks: disks,
		Pegs:  pegs,
		Moves: []Move{},
	}, nil
}

func (p *Puzzle) Solved() bool {
	return len(p.Moves) > 0 || p.Disks == 0
}

func (p *Puzzle) Solve() error {
	moves, err := Generate(p.Disks, p.Pegs.Source, p.Pegs.Auxiliary, p.Pegs.Destination)
	if err != nil {
		return err
	}

	p.Moves = moves
	return nil
}

// All yields the stored solution once solved and generates it lazily before that.
func (p *Puzzle) All() iter.Seq[Move] {
	if p.Solved() {
		return slices.Values(p.Moves)
	}

	return Moves(p.Disks, p.Pegs.Source, p.Pegs.Auxiliary, p.Pegs.Destination)
}
