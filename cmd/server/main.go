package main

import (
	"flag"
	"log"

	"chessreplay/internal/controller"
	"chessreplay/internal/middleware"
	"chessreplay/internal/service"
	"chessreplay/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	dataDir := flag.String("data", "", "badger data directory; empty disables persistence")
	flag.Parse()

	var st *store.Store
	if *dataDir != "" {
		var err error
		st, err = store.Open(*dataDir)
		if err != nil {
			log.Fatal(err)
		}
		defer st.Close()
	}

	gameManager, err := service.NewGameManager(st)
	if err != nil {
		log.Fatal(err)
	}
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	log.Fatal(app.Listen(*addr))
}
