package http

import (
	"vision-gateway/internal/model"
	"vision-gateway/internal/router"
	"vision-gateway/pkg/log"
)

// Handler is the public interface for the router HTTP delivery layer.
type Handler interface {
	Query(c interface{})
	Manual(c interface{})
	Score(c interface{})
	Models(c interface{})
}

type handler struct {
	l       log.Logger
	uc      router.UseCase
	catalog model.Catalog
}

// New creates a new HTTP handler for the router domain.
func New(l log.Logger, uc router.UseCase, catalog model.Catalog) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		catalog: catalog,
	}
}
