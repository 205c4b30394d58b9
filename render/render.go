package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/garlicgarrison/hanoi/hanoi"
	"gopkg.in/yaml.v2"
)

type Format string

const (
	TEXT Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// MaxStructuredDisks bounds json and yaml output, which hold the whole
// solution in memory. Text output streams and has no such limit.
const MaxStructuredDisks = 20

var (
	ErrUnknownFormat = errors.New("unknown output format")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case TEXT, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Write renders p in the given format. Structured formats need the full
// solution, so an unsolved puzzle is solved first.
func Write(w io.Writer, format Format, p *hanoi.Puzzle) error {
	switch format {
	case TEXT:
		return Text(w, p)
	case JSON, YAML:
		if p.Disks > MaxStructuredDisks {
			return fmt.Errorf("%w: %s output holds at most %d disks, got %d",
				hanoi.ErrInvalidArgument, format, MaxStructuredDisks, p.Disks)
		}
		if !p.Solved() {
			if err := p.Solve(); err != nil {
				return err
			}
		}
		if format == JSON {
			return JSONDoc(w, p)
		}
		return YAMLDoc(w, p)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Text prints the two header lines followed by one "<from>-><to>" line per
// move. Moves are streamed, so an unsolved puzzle is never materialised.
func Text(w io.Writer, p *hanoi.Puzzle) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Towers of Hanoi")
	fmt.Fprintf(bw, "Moving %d disk(s) from peg %s to %s, using %s\n",
		p.Disks, p.Pegs.Source, p.Pegs.Destination, p.Pegs.Auxiliary)

	for m := range p.All() {
		if _, err := fmt.Fprintln(bw, m.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func JSONDoc(w io.Writer, p *hanoi.Puzzle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func YAMLDoc(w io.Writer, p *hanoi.Puzzle) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
