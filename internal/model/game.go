package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"chessreplay/internal/chess"
	"chessreplay/internal/ws"

	"github.com/gofiber/websocket/v2"
)

var ErrGameFull = errors.New("game is full")

// GameConnections holds the live sockets observing a specific game.
type GameConnections struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // playerID -> connection
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game owns one evolving board plus its observers. The engine itself is a
// pure function over board values; all synchronization for a shared "current
// game" lives here, not in the core.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	board       chess.Board
	history     []Ply
	players     Players
	connections *GameConnections
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		CreatedAt:   time.Now(),
		board:       chess.NewBoard(),
		connections: NewGameConnections(),
	}
}

// AddPlayer claims White first, then Black. A third player is rejected with
// ErrGameFull.
func (g *Game) AddPlayer(playerID string) (chess.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = Player{ID: playerID, Color: chess.White}
		return chess.White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = Player{ID: playerID, Color: chess.Black}
		return chess.Black, nil
	}
	return "", ErrGameFull
}

// MakeMove parses coordinate text, runs it through the engine and, on
// success, broadcasts the new state to every connection. Engine errors pass
// through unchanged so callers can match the taxonomy with errors.Is.
func (g *Game) MakeMove(text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.applyMove(text); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

// Replay applies a recorded move list, e.g. when rehydrating a persisted
// game. No broadcast: nothing is connected yet.
func (g *Game) Replay(moves []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, text := range moves {
		if err := g.applyMove(text); err != nil {
			return fmt.Errorf("move %d (%q): %w", i+1, text, err)
		}
	}
	return nil
}

func (g *Game) applyMove(text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}

	next, err := chess.AttemptMove(g.board, move)
	if err != nil {
		return err
	}

	ply := Ply{
		From:      move.From,
		To:        move.To,
		Promotion: move.Promotion,
		Notation:  move.String(),
	}
	ply.Piece, _ = g.board.PieceAt(move.From)
	if captured, _ := g.board.PieceAt(move.To); !captured.IsEmpty() {
		ply.Captured = &captured
	}

	g.board = next
	g.history = append(g.history, ply)
	return nil
}

// Moves returns the applied moves in coordinate notation, oldest first.
func (g *Game) Moves() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	moves := make([]string, len(g.history))
	for i, ply := range g.history {
		moves[i] = ply.Notation
	}
	return moves
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// snapshot builds the JSON-ready view; callers hold g.mu.
func (g *Game) snapshot() GameState {
	grid := make([][]*chess.Piece, boardSize)
	for rank := 0; rank < boardSize; rank++ {
		grid[rank] = make([]*chess.Piece, boardSize)
		for file := 0; file < boardSize; file++ {
			piece, err := g.board.PieceAt(chess.Square{File: file, Rank: rank})
			if err != nil || piece.IsEmpty() {
				continue
			}
			p := piece
			grid[rank][file] = &p
		}
	}

	state := GameState{
		Board:       grid,
		ToMove:      g.board.ActiveColor(),
		MoveHistory: make([]Ply, len(g.history)),
		Players:     g.players,
	}
	copy(state.MoveHistory, g.history)
	if len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		state.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	return state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if playerID == "" {
		return false
	}
	return g.players.White.ID == playerID || g.players.Black.ID == playerID
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// RegisterConnection attaches a socket to the game and sends it the current
// state. Players always may connect; a free seat admits spectators too.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the existing healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	state := g.GetState()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	var failed []string
	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, playerID, err)
			failed = append(failed, playerID)
		}
	}
	if len(failed) > 0 {
		g.connections.mu.Lock()
		for _, playerID := range failed {
			delete(g.connections.connections, playerID)
		}
		g.connections.mu.Unlock()
	}
}
