package controller

import (
	"errors"

	"chessreplay/internal/chess"
	"chessreplay/internal/service"

	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(state)
}

// MakeMove accepts {"move": "e2e4"} and applies it to the game.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var body struct {
		Move string `json:"move"`
	}
	if err := c.BodyParser(&body); err != nil || body.Move == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request body must contain a move",
		})
	}

	if err := gc.gameService.HandleMove(gameID, body.Move); err != nil {
		return gc.errorResponse(c, err)
	}

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(state)
}

// errorResponse maps the engine's error taxonomy onto HTTP statuses: unknown
// game 404, malformed move text 400, rejected moves 422.
func (gc *GameController) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, chess.ErrMalformedMove):
		status = fiber.StatusBadRequest
	case errors.Is(err, chess.ErrOutOfBounds),
		errors.Is(err, chess.ErrNoPiece),
		errors.Is(err, chess.ErrWrongColor),
		errors.Is(err, chess.ErrFriendlyCapture),
		errors.Is(err, chess.ErrIllegalMovement),
		errors.Is(err, chess.ErrMissingPromotion),
		errors.Is(err, chess.ErrInvalidPromotion),
		errors.Is(err, chess.ErrUnexpectedPromotion):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
