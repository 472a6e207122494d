// Package movesource supplies ordered sequences of coordinate move text
// ("e2e4") to a replay loop. A Source yields one move at a time and signals
// the end of the sequence with io.EOF; it never interprets the text itself.
package movesource

import (
	"bufio"
	"io"
	"strings"
)

type Source interface {
	// Next returns the next move text, or io.EOF when no moves remain.
	Next() (string, error)
}

// Slice serves moves from memory.
type Slice struct {
	moves []string
	pos   int
}

func NewSlice(moves []string) *Slice {
	return &Slice{moves: moves}
}

func (s *Slice) Next() (string, error) {
	if s.pos >= len(s.moves) {
		return "", io.EOF
	}
	move := s.moves[s.pos]
	s.pos++
	return move, nil
}

// Reader yields one move per non-blank line, trimmed. It backs the
// interactive prompt, which prints its own prompts between calls.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
