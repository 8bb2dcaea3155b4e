package export

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for export operations.
var (
	// ErrMalformedRecords indicates records that cannot be rebuilt into a grid.
	ErrMalformedRecords = errors.New("export: malformed records")

	// ErrUnknownHandle indicates a handle the registry does not hold.
	ErrUnknownHandle = errors.New("export: unknown handle")

	// ErrUnknownFormat indicates an unsupported encoding.
	ErrUnknownFormat = errors.New("export: unknown format")
)

// Record is the flat, language-neutral form of one cell. Linked holds
// topology.Direction names and Orientation a topology.Orientation name, so
// triangles link West, East, North or South and are oriented Up or Down.
type Record struct {
	X              int      `json:"x" msgpack:"x"`
	Y              int      `json:"y" msgpack:"y"`
	MazeType       string   `json:"maze_type" msgpack:"maze_type"`
	Linked         []string `json:"linked" msgpack:"linked"`
	Distance       int32    `json:"distance" msgpack:"distance"`
	IsStart        bool     `json:"is_start" msgpack:"is_start"`
	IsGoal         bool     `json:"is_goal" msgpack:"is_goal"`
	IsActive       bool     `json:"is_active" msgpack:"is_active"`
	IsVisited      bool     `json:"is_visited" msgpack:"is_visited"`
	HasBeenVisited bool     `json:"has_been_visited" msgpack:"has_been_visited"`
	OnSolutionPath bool     `json:"on_solution_path" msgpack:"on_solution_path"`
	Orientation    string   `json:"orientation" msgpack:"orientation"`
}

// Format selects a wire encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatMsgpack {
		return "application/msgpack"
	}
	return "application/json"
}

// ParseFormat resolves "json" or "msgpack" case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "msgpack", "messagepack":
		return FormatMsgpack, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
