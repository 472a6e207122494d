package chess

import "fmt"

const boardSize = 8

const fileLetters = "abcdefgh"

// Square addresses one coordinate of the 8x8 grid. File and Rank are zero
// indexed: e4 is Square{File: 4, Rank: 3}. Rank 0 is White's back rank.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < boardSize && s.Rank >= 0 && s.Rank < boardSize
}

// String renders the common chess notation, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", fileLetters[s.File], s.Rank+1)
}

// ParseSquare reads two-character coordinate text such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%w: square %q", ErrMalformedMove, name)
	}
	file := name[0] - 'a'
	rank := name[1] - '1'
	if file >= boardSize || rank >= boardSize {
		return Square{}, fmt.Errorf("%w: square %q", ErrMalformedMove, name)
	}
	return Square{File: int(file), Rank: int(rank)}, nil
}
