package model

import "chessreplay/internal/chess"

const boardSize = 8

// Ply records one applied half-move for the history and for persistence.
type Ply struct {
	Piece     chess.Piece     `json:"piece"`
	From      chess.Square    `json:"from"`
	To        chess.Square    `json:"to"`
	Captured  *chess.Piece    `json:"capturedPiece,omitempty"`
	Promotion chess.PieceKind `json:"promotion,omitempty"`
	Notation  string          `json:"notation"`
}

type SimpleMove struct {
	From chess.Square `json:"from"`
	To   chess.Square `json:"to"`
}

// GameState is the JSON snapshot sent to clients. Board is indexed
// [rank][file] with rank 0 nearest White; empty squares are null.
type GameState struct {
	Board       [][]*chess.Piece `json:"board"`
	ToMove      chess.Color      `json:"toMove"`
	MoveHistory []Ply            `json:"moveHistory"`
	Players     Players          `json:"players"`
	LastMove    *SimpleMove      `json:"lastMove"`
}
