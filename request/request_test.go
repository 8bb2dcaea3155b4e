package request_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/request"
	"github.com/jmisabella/mazer/topology"
)

const singleJSON = `{
  "maze_type": "Orthogonal",
  "width": 12,
  "height": 10,
  "algorithm": "RecursiveBacktracker",
  "start": {"x": 0, "y": 0},
  "goal": {"x": 11, "y": 9},
  "seed": 42,
  "capture_steps": true
}`

const batchHCL = `
maze "lobby" {
  maze_type = "Sigma"
  width     = 20
  height    = 15
  algorithm = "Wilson's"
  braid     = 0.25
  start {
    x = 1
    y = 2
  }
}

maze "tower" {
  maze_type = "triangle"
  width     = 8
  height    = 8
  algorithm = "growing-tree-newest"
  seed      = 7
  policy    = "farthest"
}
`

// TestParseJSON_Single decodes a single request object.
func TestParseJSON_Single(t *testing.T) {
	docs, err := request.ParseJSON([]byte(singleJSON))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	req, err := docs[0].Request()
	require.NoError(t, err)

	s := int64(42)
	want := engine.Request{
		Family:       topology.Orthogonal,
		Width:        12,
		Height:       10,
		Algorithm:    generator.RecursiveBacktracker,
		Start:        &topology.Coord{X: 0, Y: 0},
		Goal:         &topology.Coord{X: 11, Y: 9},
		Seed:         &s,
		CaptureSteps: true,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

// TestParseJSON_Array accepts a list of documents.
func TestParseJSON_Array(t *testing.T) {
	docs, err := request.ParseJSON([]byte(`[
		{"maze_type": "Delta", "width": 4, "height": 4, "algorithm": "Prims"},
		{"maze_type": "Sigma", "width": 5, "height": 3, "algorithm": "kruskal", "braid": 0.5, "braid_budget": 2}
	]`))
	require.NoError(t, err)
	reqs, err := request.Requests(docs)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, topology.Delta, reqs[0].Family)
	assert.Nil(t, reqs[0].Seed)
	assert.Equal(t, generator.Kruskals, reqs[1].Algorithm)
	assert.Equal(t, 0.5, reqs[1].Braid)
	assert.Equal(t, 2, reqs[1].BraidBudget)
}

// TestParseJSON_Errors separates syntax errors from bad values.
func TestParseJSON_Errors(t *testing.T) {
	for _, in := range []string{
		"", "   ", `{"width": }`, `{"maze_type": "Orthogonal", "colour": "red"}`,
		`{"maze_type": "Orthogonal", "width": 3, "height": 3, "algorithm": "Prims"} {"maze_type": "Sigma", "width": 3, "height": 3, "algorithm": "Prims"}`,
		`[{"maze_type": "Delta", "width": 4, "height": 4, "algorithm": "Prims"}] []`,
		`{"maze_type": "Orthogonal"} 7`,
	} {
		_, err := request.ParseJSON([]byte(in))
		assert.ErrorIs(t, err, request.ErrDecode, in)
	}

	docs, err := request.ParseJSON([]byte(`{"maze_type": "Polar", "width": 3, "height": 3, "algorithm": "Prims"}`))
	require.NoError(t, err)
	_, err = docs[0].Request()
	assert.ErrorIs(t, err, grid.ErrValidation)
	assert.ErrorIs(t, err, topology.ErrUnknownFamily)

	docs, err = request.ParseJSON([]byte(`{"maze_type": "Sigma", "width": 3, "height": 3, "algorithm": "Maze Runner"}`))
	require.NoError(t, err)
	_, err = request.Requests(docs)
	assert.ErrorIs(t, err, grid.ErrValidation)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

// TestParseHCL decodes labelled blocks with optional fields.
func TestParseHCL(t *testing.T) {
	docs, err := request.ParseHCL([]byte(batchHCL), "batch.hcl")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "lobby", docs[0].Name)
	assert.Equal(t, "tower", docs[1].Name)

	reqs, err := request.Requests(docs)
	require.NoError(t, err)

	assert.Equal(t, topology.Sigma, reqs[0].Family)
	assert.Equal(t, generator.Wilsons, reqs[0].Algorithm)
	assert.Equal(t, 0.25, reqs[0].Braid)
	assert.Equal(t, &topology.Coord{X: 1, Y: 2}, reqs[0].Start)
	assert.Nil(t, reqs[0].Goal)
	assert.Nil(t, reqs[0].Seed)

	assert.Equal(t, topology.Delta, reqs[1].Family)
	assert.Equal(t, generator.GrowingTreeNewest, reqs[1].Algorithm)
	assert.Equal(t, engine.PolicyFarthest, reqs[1].Policy)
	require.NotNil(t, reqs[1].Seed)
	assert.Equal(t, int64(7), *reqs[1].Seed)
}

// TestParseHCL_Errors reports syntax and schema problems as ErrDecode.
func TestParseHCL_Errors(t *testing.T) {
	for _, in := range []string{
		`maze "a" {`,
		`maze "a" { width = 3 }`,
		`maze { maze_type = "Sigma" width = 3 height = 3 algorithm = "Prims" }`,
		`widget "a" {}`,
	} {
		_, err := request.ParseHCL([]byte(in), "bad.hcl")
		assert.ErrorIs(t, err, request.ErrDecode, in)
	}

	docs, err := request.ParseHCL([]byte(`
maze "x" {
  maze_type = "Sigma"
  width     = 3
  height    = 3
  algorithm = "Prims"
  policy    = "sideways"
}`), "policy.hcl")
	require.NoError(t, err)
	_, err = docs[0].Request()
	assert.ErrorIs(t, err, grid.ErrValidation)
	assert.Contains(t, err.Error(), `maze "x"`)
}

// TestLoadFile picks the decoder from the extension.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	hclPath := filepath.Join(dir, "mazes.hcl")
	jsonPath := filepath.Join(dir, "maze.json")
	require.NoError(t, os.WriteFile(hclPath, []byte(batchHCL), 0o600))
	require.NoError(t, os.WriteFile(jsonPath, []byte(singleJSON), 0o600))

	docs, err := request.LoadFile(hclPath)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = request.LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = request.LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestFromRequest mirrors Request.
func TestFromRequest(t *testing.T) {
	docs, err := request.ParseHCL([]byte(batchHCL), "batch.hcl")
	require.NoError(t, err)
	for _, d := range docs {
		req, err := d.Request()
		require.NoError(t, err)
		back, err := request.FromRequest(d.Name, req).Request()
		require.NoError(t, err)
		if diff := cmp.Diff(req, back); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", d.Name, diff)
		}
	}
}
