package usecase

import (
	"vision-gateway/internal/capability"
	"vision-gateway/internal/model"
	"vision-gateway/internal/resultstore"
	"vision-gateway/internal/router"
	"vision-gateway/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	classifier router.Classifier
	adapters   map[router.Intent]capability.Adapter
	results    *resultstore.Store
	catalog    model.Catalog
}

// New creates the routing use case. One adapter is registered per intent;
// the dispatch table is closed after construction.
func New(
	l log.Logger,
	classifier router.Classifier,
	analyze capability.Adapter,
	generate capability.Adapter,
	transform capability.Adapter,
	score capability.Adapter,
	results *resultstore.Store,
	catalog model.Catalog,
) router.UseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		adapters: map[router.Intent]capability.Adapter{
			router.IntentAnalyze:   analyze,
			router.IntentGenerate:  generate,
			router.IntentTransform: transform,
			router.IntentScore:     score,
		},
		results: results,
		catalog: catalog,
	}
}
