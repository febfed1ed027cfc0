package httpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"deskpilot/internal/bridge"
	"deskpilot/internal/middleware"
	"deskpilot/pkg/log"
)

// Processor is the command-routing entry the server fronts.
type Processor interface {
	Process(ctx context.Context, command string) bridge.Outcome
	Stats() bridge.Stats
	ClearHistory()
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw        middleware.Middleware
	processor Processor
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Processor  Processor
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		processor:   cfg.Processor,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.processor == nil {
		return errors.New("processor is required")
	}
	return nil
}

// Run maps the routes and blocks serving HTTP.
func (srv *HTTPServer) Run() error {
	srv.mapHandlers()
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
