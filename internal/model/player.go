package model

import "chessreplay/internal/chess"

type Player struct {
	ID    string      `json:"name"`
	Color chess.Color `json:"color"`
}

type Players struct {
	White Player `json:"white"`
	Black Player `json:"black"`
}
