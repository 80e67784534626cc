package handler

import (
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"ferias-engine/internal/engine"
	"ferias-engine/internal/metrics"
	"ferias-engine/internal/model"
)

var ErrEmptyBody = errors.New("empty request body")

const otherPathLabel = "other"

type Handler struct {
	engine  *engine.Engine
	log     *zap.Logger
	metrics fasthttp.RequestHandler
}

func New(e *engine.Engine, log *zap.Logger) *Handler {
	return &Handler{
		engine:  e,
		log:     log,
		metrics: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Serve routes a request. It is the fasthttp.RequestHandler of the service.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch path {
	case "/calculate":
		h.handleCalculation(ctx)
	case "/healthz":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			break
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/metrics":
		h.metrics(ctx)
	default:
		// unknown paths share one label so clients cannot grow the series set
		path = otherPathLabel
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
	metrics.HTTPRequestsTotal.WithLabelValues(path, strconv.Itoa(ctx.Response.StatusCode())).Inc()
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, err := decodeRequest(ctx.PostBody())
	if err != nil {
		h.log.Info("rejected calculation request", zap.Error(err))
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Process(req))
}

func decodeRequest(body []byte) (*model.CalculationRequest, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	var req model.CalculationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode calculation request: %w", err)
	}
	return &req, nil
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.Error("encode response: "+err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
