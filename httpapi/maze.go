package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmisabella/mazer/engine"
	"github.com/jmisabella/mazer/export"
	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/internal/ctxlog"
	"github.com/jmisabella/mazer/request"
	"github.com/jmisabella/mazer/topology"
)

// MazeController serves maze generation and buffer ownership routes.
type MazeController struct {
	engine   *engine.Engine
	registry *export.Registry
}

// NewMazeController wires a controller to an engine and a registry.
func NewMazeController(e *engine.Engine, reg *export.Registry) *MazeController {
	return &MazeController{engine: e, registry: reg}
}

// Register adds the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.fetch)
		mazes.DELETE("/:ID", mc.release)
		mazes.POST("/:ID/moves", mc.move)
	}
}

// Stats reports outstanding buffers for the health route.
func (mc *MazeController) Stats() (int, int) {
	return mc.registry.Stats()
}

// create generates one maze. ?format=msgpack returns the raw buffer with the
// handle in X-Maze-ID; the default JSON reply is a MazeResponse.
func (mc *MazeController) create(ctx *gin.Context) {
	format, err := export.ParseFormat(ctx.DefaultQuery("format", "json"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	docs, err := request.ParseJSON(body)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	if len(docs) != 1 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "exactly one maze per request"})
		return
	}
	req, err := docs[0].Request()
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	m, err := mc.engine.Generate(req)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	records := export.Flatten(m.Grid)
	h, data, err := mc.registry.Transfer(records, format)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctxlog.FromContext(ctx.Request.Context()).Debug("maze transferred",
		"id", h.String(), "format", format.String(), "bytes", len(data))

	ctx.Header("X-Maze-ID", h.String())
	ctx.Header("X-Maze-Seed", strconv.FormatInt(m.Seed, 10))
	if format == export.FormatMsgpack {
		ctx.Data(http.StatusCreated, format.ContentType(), data)
		return
	}
	ctx.JSON(http.StatusCreated, MazeResponse{
		ID:         h.String(),
		Request:    request.FromRequest(docs[0].Name, req),
		Seed:       m.Seed,
		PathLength: m.Solution.Length,
		Braided:    m.Braided,
		Cells:      records,
		Steps:      m.Steps,
	})
}

// fetch returns a transferred buffer in its original encoding.
func (mc *MazeController) fetch(ctx *gin.Context) {
	h, err := export.ParseHandle(ctx.Params.ByName("ID"))
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	buf, err := mc.registry.Get(h)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, buf.Format.ContentType(), buf.Data)
}

// release reclaims a transferred buffer.
func (mc *MazeController) release(ctx *gin.Context) {
	h, err := export.ParseHandle(ctx.Params.ByName("ID"))
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	if err := mc.registry.Release(h); err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// move steps the player of a transferred maze one cell and stores the new
// state under the same handle, in the buffer's encoding.
func (mc *MazeController) move(ctx *gin.Context) {
	h, err := export.ParseHandle(ctx.Params.ByName("ID"))
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	var body MoveRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	dir, ok := topology.ParseDirection(body.Direction)
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown direction " + strconv.Quote(body.Direction)})
		return
	}

	var resp MoveResponse
	_, err = mc.registry.Update(h, func(records []export.Record) ([]export.Record, error) {
		g, err := export.Rebuild(records)
		if err != nil {
			return nil, err
		}
		at, err := g.Move(dir)
		if err != nil {
			return nil, err
		}
		goal, _ := g.Goal()
		out := export.Flatten(g)
		resp = MoveResponse{ID: h.String(), Active: at, AtGoal: at == goal, Trail: g.Trail(), Cells: out}
		return out, nil
	})
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// fail maps domain errors to HTTP statuses.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, export.ErrUnknownHandle):
		status = http.StatusNotFound
	case errors.Is(err, grid.ErrBlockedMove):
		status = http.StatusConflict
	case errors.Is(err, generator.ErrUnsupportedCombination):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, request.ErrDecode),
		errors.Is(err, grid.ErrValidation),
		errors.Is(err, export.ErrUnknownFormat):
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		ctxlog.FromContext(ctx.Request.Context()).Error("maze request failed", "error", err)
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}
