package chess

import (
	"fmt"
	"strings"
)

// Move describes one attempted move: origin, destination and, for a pawn
// reaching the far rank, the kind it promotes to. Moves are ephemeral; the
// engine keeps no history of them.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceKind `json:"promotion,omitempty"`
}

var promotionLetters = map[byte]PieceKind{
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
}

// ParseMove reads coordinate notation: "e2e4", or "e7e8q" with a trailing
// promotion letter (q, r, b or n). Anything else fails with ErrMalformedMove.
func ParseMove(text string) (Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		kind, ok := promotionLetters[text[4]]
		if !ok {
			return Move{}, fmt.Errorf("%w: promotion letter %q", ErrMalformedMove, text[4:])
		}
		m.Promotion = kind
	}
	return m, nil
}

// String renders the move back to coordinate notation.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != "" {
		s += strings.ToLower(string(m.Promotion.letter()))
	}
	return s
}
