package chess

import "fmt"

// AttemptMove validates m against b and, when legal, returns the successor
// board with the active color flipped. On failure it returns the zero Board
// and one of the errors in errors.go; b itself is never changed, so the
// caller can retry with a corrected move.
//
// The check order is fixed: bounds, origin occupancy, turn, self-capture,
// movement geometry, promotion. The first failing condition determines the
// error. No check or checkmate detection is performed: a move that leaves the
// mover's own king attacked is accepted.
func AttemptMove(b Board, m Move) (Board, error) {
	if !m.From.InBounds() || !m.To.InBounds() || m.From == m.To {
		return Board{}, fmt.Errorf("%w: %s to %s", ErrOutOfBounds, m.From, m.To)
	}
	piece := b.pieceAt(m.From)
	if piece.IsEmpty() {
		return Board{}, fmt.Errorf("%w: %s", ErrNoPiece, m.From)
	}
	if piece.Color != b.turn {
		return Board{}, fmt.Errorf("%w: it is %s to move", ErrWrongColor, b.turn)
	}
	if target := b.pieceAt(m.To); !target.IsEmpty() && target.Color == piece.Color {
		return Board{}, fmt.Errorf("%w: %s on %s", ErrFriendlyCapture, target.Kind, m.To)
	}
	if !legalDisplacement(b, piece, m.From, m.To) {
		return Board{}, fmt.Errorf("%w: %s from %s to %s", ErrIllegalMovement, piece.Kind, m.From, m.To)
	}
	if err := checkPromotion(piece, m); err != nil {
		return Board{}, err
	}
	return b.apply(m), nil
}

func checkPromotion(piece Piece, m Move) error {
	promoting := piece.Kind == Pawn && (m.To.Rank == 0 || m.To.Rank == boardSize-1)
	switch {
	case promoting && m.Promotion == "":
		return fmt.Errorf("%w: pawn reaches %s", ErrMissingPromotion, m.To)
	case promoting && !promotable(m.Promotion):
		return fmt.Errorf("%w: %s", ErrInvalidPromotion, m.Promotion)
	case !promoting && m.Promotion != "":
		return fmt.Errorf("%w: %s does not promote", ErrUnexpectedPromotion, m)
	}
	return nil
}

func promotable(k PieceKind) bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// legalDisplacement dispatches the per-kind geometry rule. Both squares are
// in bounds, distinct, and the destination holds no friendly piece.
func legalDisplacement(b Board, piece Piece, from, to Square) bool {
	fileDelta := to.File - from.File
	rankDelta := to.Rank - from.Rank

	switch piece.Kind {
	case Pawn:
		return legalPawnMove(b, piece.Color, from, to)
	case Knight:
		return (abs(fileDelta) == 1 && abs(rankDelta) == 2) ||
			(abs(fileDelta) == 2 && abs(rankDelta) == 1)
	case King:
		return abs(fileDelta) <= 1 && abs(rankDelta) <= 1
	case Bishop:
		return abs(fileDelta) == abs(rankDelta) && pathClear(b, from, to)
	case Rook:
		return (fileDelta == 0 || rankDelta == 0) && pathClear(b, from, to)
	case Queen:
		if abs(fileDelta) == abs(rankDelta) || fileDelta == 0 || rankDelta == 0 {
			return pathClear(b, from, to)
		}
		return false
	}
	return false
}

func legalPawnMove(b Board, color Color, from, to Square) bool {
	dir, startRank := 1, 1
	if color == Black {
		dir, startRank = -1, 6
	}
	fileDelta := to.File - from.File
	rankDelta := to.Rank - from.Rank
	target := b.pieceAt(to)

	// Forward moves require empty squares all the way.
	if fileDelta == 0 {
		if rankDelta == dir {
			return target.IsEmpty()
		}
		if rankDelta == 2*dir && from.Rank == startRank {
			between := Square{File: from.File, Rank: from.Rank + dir}
			return target.IsEmpty() && b.pieceAt(between).IsEmpty()
		}
		return false
	}
	// Diagonal advance only as a capture. No en passant.
	if abs(fileDelta) == 1 && rankDelta == dir {
		return !target.IsEmpty() && target.Color != color
	}
	return false
}

// pathClear walks the squares strictly between from and to. Callers guarantee
// the displacement is a straight or exact diagonal line.
func pathClear(b Board, from, to Square) bool {
	stepFile := sign(to.File - from.File)
	stepRank := sign(to.Rank - from.Rank)
	cur := Square{File: from.File + stepFile, Rank: from.Rank + stepRank}
	for cur != to {
		if !b.pieceAt(cur).IsEmpty() {
			return false
		}
		cur.File += stepFile
		cur.Rank += stepRank
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
