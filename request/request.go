package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// ErrDecode indicates a request document that cannot be parsed.
var ErrDecode = errors.New("request: cannot decode")

// Point is a cell coordinate in a document.
type Point struct {
	X int `json:"x" hcl:"x"`
	Y int `json:"y" hcl:"y"`
}

// Document is the wire form of one request.
type Document struct {
	Name         string  `json:"name,omitempty" hcl:"name,label"`
	MazeType     string  `json:"maze_type" hcl:"maze_type"`
	Width        int     `json:"width" hcl:"width"`
	Height       int     `json:"height" hcl:"height"`
	Algorithm    string  `json:"algorithm" hcl:"algorithm"`
	Seed         *int64  `json:"seed,omitempty" hcl:"seed,optional"`
	Braid        float64 `json:"braid,omitempty" hcl:"braid,optional"`
	BraidBudget  int     `json:"braid_budget,omitempty" hcl:"braid_budget,optional"`
	CaptureSteps bool    `json:"capture_steps,omitempty" hcl:"capture_steps,optional"`
	Policy       string  `json:"policy,omitempty" hcl:"policy,optional"`
	Start        *Point  `json:"start,omitempty" hcl:"start,block"`
	Goal         *Point  `json:"goal,omitempty" hcl:"goal,block"`
}

type hclFile struct {
	Mazes []*Document `hcl:"maze,block"`
}

// ParseJSON decodes a single document or an array of documents. Unknown
// fields and trailing values after the first are rejected.
func ParseJSON(data []byte) ([]Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty JSON document", ErrDecode)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if trimmed[0] == '[' {
		var docs []Document
		if err := decodeOnly(dec, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}
	var doc Document
	if err := decodeOnly(dec, &doc); err != nil {
		return nil, err
	}
	return []Document{doc}, nil
}

// decodeOnly decodes one value into v and requires the stream to end there.
func decodeOnly(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the first JSON value", ErrDecode)
	}
	return nil
}

// ParseHCL decodes every maze block of an HCL file. filename is used in
// diagnostics only.
func ParseHCL(data []byte, filename string) ([]Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrDecode, filename, diags)
	}
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrDecode, filename, diags)
	}
	docs := make([]Document, len(parsed.Mazes))
	for i, m := range parsed.Mazes {
		docs[i] = *m
	}
	return docs, nil
}

// LoadFile reads path and decodes it as HCL when the extension is .hcl and
// as JSON otherwise.
func LoadFile(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(data, path)
	}
	return ParseJSON(data)
}

// Request resolves the document's names into an engine.Request. Dimension
// and coordinate checks are left to the engine.
func (d Document) Request() (engine.Request, error) {
	family, err := topology.ParseFamily(d.MazeType)
	if err != nil {
		return engine.Request{}, d.invalid(err)
	}
	algo, err := generator.ParseAlgorithm(d.Algorithm)
	if err != nil {
		return engine.Request{}, d.invalid(err)
	}
	policy, err := engine.ParsePolicy(d.Policy)
	if err != nil {
		return engine.Request{}, d.invalid(err)
	}

	req := engine.Request{
		Family:       family,
		Width:        d.Width,
		Height:       d.Height,
		Algorithm:    algo,
		Policy:       policy,
		Braid:        d.Braid,
		BraidBudget:  d.BraidBudget,
		CaptureSteps: d.CaptureSteps,
	}
	if d.Seed != nil {
		s := *d.Seed
		req.Seed = &s
	}
	if d.Start != nil {
		req.Start = &topology.Coord{X: d.Start.X, Y: d.Start.Y}
	}
	if d.Goal != nil {
		req.Goal = &topology.Coord{X: d.Goal.X, Y: d.Goal.Y}
	}
	return req, nil
}

func (d Document) invalid(err error) error {
	if errors.Is(err, grid.ErrValidation) {
		if d.Name != "" {
			return fmt.Errorf("maze %q: %w", d.Name, err)
		}
		return err
	}
	if d.Name != "" {
		return fmt.Errorf("%w: maze %q: %w", grid.ErrValidation, d.Name, err)
	}
	return fmt.Errorf("%w: %w", grid.ErrValidation, err)
}

// Requests converts every document, stopping at the first failure.
func Requests(docs []Document) ([]engine.Request, error) {
	out := make([]engine.Request, len(docs))
	for i, d := range docs {
		req, err := d.Request()
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out[i] = req
	}
	return out, nil
}

// FromRequest builds the document describing req, for echoing resolved
// requests back to clients.
func FromRequest(name string, req engine.Request) Document {
	d := Document{
		Name:         name,
		MazeType:     req.Family.String(),
		Width:        req.Width,
		Height:       req.Height,
		Algorithm:    req.Algorithm.String(),
		Braid:        req.Braid,
		BraidBudget:  req.BraidBudget,
		CaptureSteps: req.CaptureSteps,
	}
	if req.Policy != engine.PolicyCorners {
		d.Policy = req.Policy.String()
	}
	if req.Seed != nil {
		s := *req.Seed
		d.Seed = &s
	}
	if req.Start != nil {
		d.Start = &Point{X: req.Start.X, Y: req.Start.Y}
	}
	if req.Goal != nil {
		d.Goal = &Point{X: req.Goal.X, Y: req.Goal.Y}
	}
	return d
}
