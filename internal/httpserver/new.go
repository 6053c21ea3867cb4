package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vision-gateway/internal/model"
	"vision-gateway/internal/router"
	"vision-gateway/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	routerUC router.UseCase
	catalog  model.Catalog

	apiToken        string
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RouterUC router.UseCase
	Catalog  model.Catalog

	// APIToken enables static bearer auth when non-empty.
	APIToken string
	// RateLimitPerMin throttles per client IP; zero disables it.
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		routerUC:        cfg.RouterUC,
		catalog:         cfg.Catalog,
		apiToken:        cfg.APIToken,
		rateLimitPerMin: cfg.RateLimitPerMin,
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
	if srv.routerUC == nil {
		return errors.New("router use case is required")
	}
	return nil
}
