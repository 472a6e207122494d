package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"chessreplay/internal/chess"
	"chessreplay/internal/model"
	"chessreplay/internal/store"

	"github.com/gofiber/websocket/v2"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns the set of live games. With a store attached it persists
// every game's move list and rebuilds the games on startup by replaying the
// stored moves through the engine.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*model.Game
	store *store.Store // nil disables persistence
}

func NewGameManager(st *store.Store) (*GameManager, error) {
	gm := &GameManager{
		games: make(map[string]*model.Game),
		store: st,
	}
	if st != nil {
		if err := gm.restore(); err != nil {
			return nil, err
		}
	}
	return gm, nil
}

func (gm *GameManager) restore() error {
	recs, err := gm.store.ListGames()
	if err != nil {
		return err
	}
	for _, rec := range recs {
		game := model.NewGame(rec.ID)
		if err := game.Replay(rec.Moves); err != nil {
			return fmt.Errorf("restore game %s: %w", rec.ID, err)
		}
		gm.games[rec.ID] = game
	}
	if len(recs) > 0 {
		log.Printf("restored %d stored game(s)", len(recs))
	}
	return nil
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	game := model.NewGame(gameID)
	gm.games[gameID] = game
	gm.persist(game)
	return nil
}

func (gm *GameManager) getGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID string) (chess.Color, error) {
	game, err := gm.getGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.getGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID, text string) error {
	game, err := gm.getGame(gameID)
	if err != nil {
		return err
	}
	if err := game.MakeMove(text); err != nil {
		return err
	}
	gm.persist(game)
	return nil
}

// persist writes the game's current move list; persistence failures are
// logged, not surfaced — the live game already advanced.
func (gm *GameManager) persist(game *model.Game) {
	if gm.store == nil {
		return
	}
	rec := store.GameRecord{
		ID:        game.ID,
		Moves:     game.Moves(),
		CreatedAt: game.CreatedAt,
	}
	if err := gm.store.SaveGame(rec); err != nil {
		log.Printf("persist game %s: %v", game.ID, err)
	}
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	game, err := gm.getGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	game, err := gm.getGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
