package chess

import "errors"

// Failures surfaced by ParseMove, ParseSquare and AttemptMove. A failed
// attempt never modifies the board it was given; callers match kinds with
// errors.Is.
var (
	ErrMalformedMove       = errors.New("malformed move text")
	ErrOutOfBounds         = errors.New("square out of bounds")
	ErrNoPiece             = errors.New("no piece on origin square")
	ErrWrongColor          = errors.New("piece belongs to the opponent")
	ErrFriendlyCapture     = errors.New("cannot capture own piece")
	ErrIllegalMovement     = errors.New("piece cannot move that way")
	ErrMissingPromotion    = errors.New("promotion piece required")
	ErrInvalidPromotion    = errors.New("invalid promotion piece")
	ErrUnexpectedPromotion = errors.New("promotion not applicable")
)
