package hanoi

import (
	"fmt"
)

// tower tracks the disks on each peg, bottom first; disk 1 is the smallest.
type tower struct {
	pegs map[Peg][]int
}

func newTower(n int, pegs Pegs) *tower {
	source := make([]int, 0, n)
	for disk := n; disk >= 1; disk-- {
		source = append(source, disk)
	}

	return &tower{
		pegs: map[Peg][]int{
			pegs.Source:      source,
			pegs.Auxiliary:   {},
			pegs.Destination: {},
		},
	}
}

func (t *tower) apply(m Move) error {
	from, ok := t.pegs[m.From]
	if !ok {
		return fmt.Errorf("unknown peg %s", m.From)
	}
	to, ok := t.pegs[m.To]
	if !ok {
		return fmt.Errorf("unknown peg %s", m.To)
	}
	if len(from) == 0 {
		return fmt.Errorf("move %s: peg %s is empty", m, m.From)
	}

	disk := from[len(from)-1]
	if len(to) > 0 && to[len(to)-1] < disk {
		return fmt.Errorf("move %s: disk %d onto disk %d", m, disk, to[len(to)-1])
	}

	t.pegs[m.From] = from[:len(from)-1]
	t.pegs[m.To] = append(to, disk)
	return nil
}
