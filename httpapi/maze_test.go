package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/export"
	"github.com/jmisabella/mazer/httpapi"
	"github.com/jmisabella/mazer/topology"
)

func newServer(t *testing.T) (http.Handler, *export.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e, err := engine.New()
	require.NoError(t, err)
	reg := export.NewRegistry()
	router := httpapi.NewRouter(httpapi.Config{
		BaseURL:     "/api",
		Controllers: []httpapi.Controller{httpapi.NewMazeController(e, reg)},
	})
	return router.Handler(), reg
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const sigmaRequest = `{"maze_type":"Sigma","width":6,"height":5,"algorithm":"Prims","seed":11,"capture_steps":true}`

// TestCreate_JSON generates, fetches and releases a maze.
func TestCreate_JSON(t *testing.T) {
	h, reg := newServer(t)

	rec := do(h, http.MethodPost, "/api/v1/mazes", sigmaRequest)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp httpapi.MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Seed)
	assert.Equal(t, "11", rec.Header().Get("X-Maze-Seed"))
	assert.Equal(t, resp.ID, rec.Header().Get("X-Maze-ID"))
	assert.Len(t, resp.Cells, 30)
	assert.Equal(t, "Sigma", resp.Request.MazeType)
	assert.Equal(t, "Prims", resp.Request.Algorithm)
	assert.NotEmpty(t, resp.Steps)
	assert.Positive(t, resp.PathLength)

	n, _ := reg.Stats()
	assert.Equal(t, 1, n)

	rec = do(h, http.MethodGet, "/api/v1/mazes/"+resp.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	records, err := export.DecodeJSON(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, resp.Cells, records)

	rec = do(h, http.MethodDelete, "/api/v1/mazes/"+resp.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(h, http.MethodDelete, "/api/v1/mazes/"+resp.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(h, http.MethodGet, "/api/v1/mazes/"+resp.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestCreate_Msgpack returns the raw buffer.
func TestCreate_Msgpack(t *testing.T) {
	h, _ := newServer(t)
	rec := do(h, http.MethodPost, "/api/v1/mazes?format=msgpack",
		`{"maze_type":"Delta","width":4,"height":4,"algorithm":"Kruskals","seed":3}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "application/msgpack", rec.Header().Get("Content-Type"))

	records, err := export.DecodeMsgpack(rec.Body.Bytes())
	require.NoError(t, err)
	g, err := export.Rebuild(records)
	require.NoError(t, err)
	assert.True(t, g.IsPerfect())
}

// TestCreate_Errors maps failures to statuses.
func TestCreate_Errors(t *testing.T) {
	h, reg := newServer(t)
	cases := []struct {
		target, body string
		status       int
	}{
		{"/api/v1/mazes", `{"maze_type":`, http.StatusBadRequest},
		{"/api/v1/mazes", `{"maze_type":"Orthogonal","width":1,"height":1,"algorithm":"Prims"}`, http.StatusBadRequest},
		{"/api/v1/mazes", `{"maze_type":"Polar","width":3,"height":3,"algorithm":"Prims"}`, http.StatusBadRequest},
		{"/api/v1/mazes", `{"maze_type":"Sigma","width":3,"height":3,"algorithm":"BinaryTree"}`, http.StatusUnprocessableEntity},
		{"/api/v1/mazes?format=xml", sigmaRequest, http.StatusBadRequest},
		{"/api/v1/mazes", `[` + sigmaRequest + `,` + sigmaRequest + `]`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := do(h, http.MethodPost, tc.target, tc.body)
		assert.Equal(t, tc.status, rec.Code, "%s %s", tc.target, tc.body)
		var resp httpapi.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
	n, _ := reg.Stats()
	assert.Zero(t, n)

	rec := do(h, http.MethodGet, "/api/v1/mazes/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestMove walks the player along the solution and rejects walls.
func TestMove(t *testing.T) {
	h, reg := newServer(t)
	rec := do(h, http.MethodPost, "/api/v1/mazes",
		`{"maze_type":"Orthogonal","width":4,"height":3,"algorithm":"RecursiveBacktracker","seed":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created httpapi.MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	g, err := export.Rebuild(created.Cells)
	require.NoError(t, err)
	start, _ := g.Start()
	c, err := g.Cell(start)
	require.NoError(t, err)
	open := c.Linked()[0]
	var wall topology.Direction
	for _, d := range []topology.Direction{topology.North, topology.East, topology.South, topology.West} {
		if !c.IsLinkedDir(d) {
			wall = d
			break
		}
	}

	target := "/api/v1/mazes/" + created.ID + "/moves"
	rec = do(h, http.MethodPost, target, `{"direction":"`+wall.String()+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	rec = do(h, http.MethodGet, "/api/v1/mazes/"+created.ID, "")
	stored, err := export.DecodeJSON(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, created.Cells, stored)

	rec = do(h, http.MethodPost, target, `{"direction":"`+open.Dir.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var moved httpapi.MoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
	assert.Equal(t, open.At, moved.Active)
	assert.Equal(t, []topology.Coord{start, open.At}, moved.Trail)
	active, visited := 0, 0
	for _, r := range moved.Cells {
		if r.IsActive {
			active++
			assert.Equal(t, open.At, topology.Coord{X: r.X, Y: r.Y})
		}
		if r.IsVisited {
			visited++
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, 2, visited)

	rec = do(h, http.MethodGet, "/api/v1/mazes/"+created.ID, "")
	stored, err = export.DecodeJSON(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, moved.Cells, stored)

	for body, status := range map[string]int{
		`{"direction":"Sideways"}`: http.StatusBadRequest,
		`{}`:                       http.StatusBadRequest,
	} {
		assert.Equal(t, status, do(h, http.MethodPost, target, body).Code, body)
	}
	assert.Equal(t, http.StatusNotFound,
		do(h, http.MethodPost, "/api/v1/mazes/"+uuid.NewString()+"/moves", `{"direction":"East"}`).Code)
	n, _ := reg.Stats()
	assert.Equal(t, 1, n)
}

// TestHealth reports registry stats.
func TestHealth(t *testing.T) {
	h, _ := newServer(t)
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/v1/mazes", sigmaRequest).Code)

	rec := do(h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 1, body["buffers"])
	assert.Positive(t, body["bytes"])
}
