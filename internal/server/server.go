// Package server exposes the projection engine over HTTP.
package server

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/sgplan/lifeplan/internal/calculation"
	"github.com/sgplan/lifeplan/internal/config"
	"github.com/sgplan/lifeplan/internal/domain"
)

// Config is the server's environment configuration.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing server config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level string onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Server wires the projection engine to fasthttp handlers.
type Server struct {
	engine *calculation.Engine
	parser *config.InputParser
	log    *slog.Logger
}

// New builds a server around the given engine.
func New(engine *calculation.Engine, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		engine: engine,
		parser: config.NewInputParser(),
		log:    log,
	}
}

// Handler returns the root request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())
		s.log.Debug("request", "method", method, "path", path)

		switch {
		case path == "/healthz" && method == fasthttp.MethodGet:
			s.handleHealthz(ctx)
		case path == "/v1/project" && method == fasthttp.MethodPost:
			s.handleProject(ctx)
		case path == "/v1/compare" && method == fasthttp.MethodPost:
			s.handleCompare(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

// ListenAndServe blocks serving requests on the configured address.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", "addr", addr)
	return fasthttp.ListenAndServe(addr, s.Handler())
}

// ProjectRequest is the payload for POST /v1/project.
type ProjectRequest struct {
	Financial domain.FinancialState   `json:"financial"`
	Modules   []domain.TimelineModule `json:"modules"`
}

// ProjectResponse carries the year-by-year projection.
type ProjectResponse struct {
	Projection []domain.YearSnapshot `json:"projection"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealthz(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProject(ctx *fasthttp.RequestCtx) {
	var req ProjectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	for i := range req.Modules {
		if !domain.ValidModuleType(req.Modules[i].Type) {
			writeError(ctx, fasthttp.StatusBadRequest,
				fmt.Sprintf("module %d: unknown type %q", i, req.Modules[i].Type))
			return
		}
	}

	projection, err := s.engine.Project(req.Financial.CurrentAge, req.Financial, req.Modules)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, ProjectResponse{Projection: projection})
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var profile domain.CompleteProfile
	if err := json.Unmarshal(ctx.PostBody(), &profile); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.parser.ValidateProfile(&profile); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	comparison, err := s.engine.CompareScenarios(ctx, &profile)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, comparison)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Status: status, Message: message})
}
