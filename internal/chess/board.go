// Package chess holds the board representation and the move
// validation/application engine. Boards are plain values: every applied move
// returns a new Board, so no caller ever observes a half-updated position.
package chess

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Rook   PieceKind = "rook"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

func (k PieceKind) letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// Piece is a value, not an identity: the engine only reasons about what
// occupies a square right now. The zero Piece marks an empty square.
type Piece struct {
	Color Color     `json:"color"`
	Kind  PieceKind `json:"kind"`
}

func (p Piece) IsEmpty() bool {
	return p.Kind == ""
}

// Symbol returns the one-letter diagram symbol, lowercased for Black.
func (p Piece) Symbol() string {
	b := p.Kind.letter()
	if p.Color == Black {
		b += 'a' - 'A'
	}
	return string(b)
}

// Board is an immutable snapshot of piece placement plus the active color.
// It is a comparable value type; copying it copies the whole position.
type Board struct {
	grid [boardSize][boardSize]Piece // grid[rank][file], rank 0 = White's back rank
	turn Color
}

// NewBoard returns the standard starting position with White to move.
func NewBoard() Board {
	b := Board{turn: White}
	backRank := [boardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.grid[0][file] = Piece{Color: White, Kind: kind}
		b.grid[1][file] = Piece{Color: White, Kind: Pawn}
		b.grid[6][file] = Piece{Color: Black, Kind: Pawn}
		b.grid[7][file] = Piece{Color: Black, Kind: kind}
	}
	return b
}

// PieceAt returns the piece occupying sq, or the empty Piece. Squares outside
// the grid fail with ErrOutOfBounds.
func (b Board) PieceAt(sq Square) (Piece, error) {
	if !sq.InBounds() {
		return Piece{}, ErrOutOfBounds
	}
	return b.grid[sq.Rank][sq.File], nil
}

// ActiveColor returns whose turn it is.
func (b Board) ActiveColor() Color {
	return b.turn
}

func (b Board) pieceAt(sq Square) Piece {
	return b.grid[sq.Rank][sq.File]
}

// apply produces the successor board for an already validated move: origin
// emptied, destination overwritten (capture included), promotion swapped in,
// turn flipped. Only AttemptMove calls this.
func (b Board) apply(m Move) Board {
	piece := b.grid[m.From.Rank][m.From.File]
	if m.Promotion != "" {
		piece = Piece{Color: piece.Color, Kind: m.Promotion}
	}
	b.grid[m.From.Rank][m.From.File] = Piece{}
	b.grid[m.To.Rank][m.To.File] = piece
	b.turn = b.turn.Opponent()
	return b
}
