// chessreplay plays or inspects a simple chess game from the terminal.
// With -moves it replays a JSON move file and prints the resulting board;
// without it, it prompts for coordinate moves interactively.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"chessreplay/internal/chess"
	"chessreplay/internal/movesource"
)

func main() {
	movesPath := flag.String("moves", "", "path to a JSON file containing coordinate moves")
	flag.Parse()

	board := chess.NewBoard()

	replayed := false
	if *movesPath != "" {
		var err error
		board, err = replay(board, movesource.NewJSONFile(*movesPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		replayed = true
	}

	fmt.Println(board.Render())

	if !replayed {
		prompt(board)
	}
}

// replay drains the source, applying each move in order. The first rejected
// move aborts with its position in the sequence.
func replay(board chess.Board, src movesource.Source) (chess.Board, error) {
	for n := 1; ; n++ {
		text, err := src.Next()
		if err == io.EOF {
			return board, nil
		}
		if err != nil {
			return board, err
		}

		move, err := chess.ParseMove(text)
		if err != nil {
			return board, fmt.Errorf("move %d (%q): %w", n, text, err)
		}
		board, err = chess.AttemptMove(board, move)
		if err != nil {
			return board, fmt.Errorf("move %d (%q): %w", n, text, err)
		}
	}
}

func prompt(board chess.Board) {
	fmt.Println("\nEnter moves in coordinate notation (e.g. e2e4). Type 'quit' to exit.")
	in := movesource.NewReader(os.Stdin)

	for {
		fmt.Printf("%s to move: ", title(board.ActiveColor()))

		text, err := in.Next()
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if text == "quit" || text == "exit" {
			return
		}

		next, err := attempt(board, text)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		board = next
		fmt.Println(board.Render())
	}
}

func attempt(board chess.Board, text string) (chess.Board, error) {
	move, err := chess.ParseMove(text)
	if err != nil {
		return board, err
	}
	return chess.AttemptMove(board, move)
}

func title(c chess.Color) string {
	if c == chess.White {
		return "White"
	}
	return "Black"
}
