package chess

import (
	"strconv"
	"strings"
)

// Render returns an ASCII diagram of the board with White at the bottom.
// White pieces are uppercase, Black lowercase, empty squares dots.
func (b Board) Render() string {
	var sb strings.Builder
	for rank := boardSize - 1; rank >= 0; rank-- {
		sb.WriteString(strconv.Itoa(rank + 1))
		for file := 0; file < boardSize; file++ {
			sb.WriteByte(' ')
			piece := b.grid[rank][file]
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteString(piece.Symbol())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for i := 0; i < boardSize; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(fileLetters[i])
	}
	return sb.String()
}
