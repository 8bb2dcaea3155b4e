package httpapi

import (
	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/export"
	"github.com/jmisabella/mazer/request"
	"github.com/jmisabella/mazer/topology"
)

// MazeResponse is the JSON envelope returned by POST /mazes.
type MazeResponse struct {
	ID         string           `json:"id"`
	Request    request.Document `json:"request"`
	Seed       int64            `json:"seed"`
	PathLength int              `json:"path_length"`
	Braided    int              `json:"braided"`
	Cells      []export.Record  `json:"cells"`
	Steps      []engine.Step    `json:"steps,omitempty"`
}

// MoveRequest is the body of POST /mazes/:ID/moves.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// MoveResponse reports the player's position after a move.
type MoveResponse struct {
	ID     string           `json:"id"`
	Active topology.Coord   `json:"active"`
	AtGoal bool             `json:"at_goal"`
	Trail  []topology.Coord `json:"trail"`
	Cells  []export.Record  `json:"cells"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
