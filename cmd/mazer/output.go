package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/export"
	"github.com/jmisabella/mazer/internal/cli"
	"github.com/jmisabella/mazer/render"
	"github.com/jmisabella/mazer/request"
	"github.com/jmisabella/mazer/topology"
)

// mazeOutput is one generated maze in json and msgpack output.
type mazeOutput struct {
	Name       string          `json:"name,omitempty" msgpack:"name,omitempty"`
	Seed       int64           `json:"seed" msgpack:"seed"`
	PathLength int             `json:"path_length" msgpack:"path_length"`
	Cells      []export.Record `json:"cells" msgpack:"cells"`
	Heatmap    []int           `json:"heatmap,omitempty" msgpack:"heatmap,omitempty"`
	Steps      []engine.Step   `json:"steps,omitempty" msgpack:"steps,omitempty"`
}

// write renders the successful results in opts.Format. Failed entries are
// skipped; the caller reports them.
func write(w io.Writer, opts *cli.Options, docs []request.Document, results []engine.BatchResult) error {
	switch opts.Format {
	case "ascii":
		return writeASCII(w, opts.Heatmap, docs, results)
	case "svg":
		return writeSVG(w, opts, docs, results)
	}

	out := make([]mazeOutput, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		mo := mazeOutput{
			Name:       docs[r.Index].Name,
			Seed:       r.Maze.Seed,
			PathLength: r.Maze.Solution.Length,
			Cells:      export.Flatten(r.Maze.Grid),
			Steps:      r.Maze.Steps,
		}
		if opts.Heatmap {
			mo.Heatmap = render.Heatmap(r.Maze.Grid)
		}
		out = append(out, mo)
	}

	var (
		data []byte
		err  error
	)
	if opts.Format == "msgpack" {
		data, err = msgpack.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func title(docs []request.Document, index int) string {
	if name := docs[index].Name; name != "" {
		return name
	}
	return fmt.Sprintf("maze %d", index)
}

// writeASCII draws orthogonal mazes as box art. Other families, and every
// family when heatmap is set, get a grid of distance shades.
func writeASCII(w io.Writer, heatmap bool, docs []request.Document, results []engine.BatchResult) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		m := r.Maze
		fmt.Fprintf(w, "%s: %s %dx%d %s seed=%d path=%d\n", title(docs, r.Index),
			m.Request.Family, m.Request.Width, m.Request.Height, m.Request.Algorithm, m.Seed, m.Solution.Length)
		if m.Request.Family == topology.Orthogonal {
			art, err := m.Grid.ASCII()
			if err != nil {
				return err
			}
			fmt.Fprintln(w, art)
			if !heatmap {
				continue
			}
		}
		fmt.Fprintln(w, shadeRows(m))
	}
	return nil
}

// shadeRows prints one shade digit per cell, row by row; '.' marks a cell
// the solver never reached.
func shadeRows(m *engine.Maze) string {
	shades := render.Heatmap(m.Grid)
	g := m.Grid
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			s := shades[y*g.Width()+x]
			ch := byte('.')
			if s >= 0 {
				ch = byte('0' + s)
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// writeSVG writes one picture to w, or one file per maze under opts.OutDir.
func writeSVG(w io.Writer, opts *cli.Options, docs []request.Document, results []engine.BatchResult) error {
	ropts := render.Options{Heatmap: opts.Heatmap}
	var ok []engine.BatchResult
	for _, r := range results {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	if opts.OutDir == "" {
		switch len(ok) {
		case 0:
			return nil
		case 1:
			return render.SVG(w, ok[0].Maze.Grid, ropts)
		}
		return fmt.Errorf("svg output of %d mazes needs -out", len(ok))
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return err
	}
	for _, r := range ok {
		var buf bytes.Buffer
		if err := render.SVG(&buf, r.Maze.Grid, ropts); err != nil {
			return err
		}
		name := strings.ReplaceAll(title(docs, r.Index), " ", "-") + ".svg"
		path := filepath.Join(opts.OutDir, filepath.Base(name))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(w, path)
	}
	return nil
}
