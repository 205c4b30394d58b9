package hanoi

import (
	"fmt"
)

type Peg string

type Move struct {
	From Peg `json:"from" yaml:"from"`
	To   Peg `json:"to" yaml:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// Pegs assigns the three pegs to their roles for one puzzle.
type Pegs struct {
	Source      Peg `json:"source" yaml:"source"`
	Auxiliary   Peg `json:"auxiliary" yaml:"auxiliary"`
	Destination Peg `json:"destination" yaml:"destination"`
}

var DefaultPegs = Pegs{
	Source:      "A",
	Auxiliary:   "B",
	Destination: "C",
}

func (p Pegs) Validate() error {
	if p.Source == "" || p.Auxiliary == "" || p.Destination == "" {
		return fmt.Errorf("%w: peg labels must not be empty", ErrInvalidArgument)
	}

	if p.Source == p.Auxiliary || p.Source == p.Destination || p.Auxiliary == p.Destination {
		return fmt.Errorf("%w: peg labels must be distinct, got %s, %s, %s",
			ErrInvalidArgument, p.Source, p.Auxiliary, p.Destination)
	}

	return nil
}
