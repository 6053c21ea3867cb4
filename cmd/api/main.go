package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"vision-gateway/config"
	_ "vision-gateway/docs" // Swagger docs
	"vision-gateway/internal/capability"
	"vision-gateway/internal/httpserver"
	"vision-gateway/internal/resultstore"
	"vision-gateway/internal/router"
	"vision-gateway/internal/router/classifier"
	"vision-gateway/internal/router/usecase"
	"vision-gateway/pkg/imagegen"
	"vision-gateway/pkg/log"
	"vision-gateway/pkg/mlserving"
	"vision-gateway/pkg/visionchat"
)

// @title       Vision Gateway API
// @description Intent-routed gateway over hosted vision and diffusion models: analysis, generation, transformation, and Image-as-a-Judge scoring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Vision Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Serving gateway: %s", cfg.Serving.BaseURL)

	catalog := cfg.Models.ToCatalog()

	// 3. Serving clients. OAuth client credentials take precedence over the
	// static key when configured.
	var servingHTTPClient *http.Client
	if cfg.Serving.OAuth.Enabled() {
		logger.Info(ctx, "Using OAuth client-credentials auth for the serving gateway")
		oauthCfg := clientcredentials.Config{
			ClientID:     cfg.Serving.OAuth.ClientID,
			ClientSecret: cfg.Serving.OAuth.ClientSecret,
			TokenURL:     cfg.Serving.OAuth.TokenURL,
		}
		servingHTTPClient = oauthCfg.Client(ctx)
		servingHTTPClient.Timeout = cfg.Serving.Timeout
		if servingHTTPClient.Timeout <= 0 {
			servingHTTPClient.Timeout = 120 * time.Second
		}
	}

	chat, err := visionchat.New(visionchat.Config{
		APIKey:     cfg.Serving.APIKey,
		BaseURL:    cfg.Serving.BaseURL,
		Model:      catalog.DefaultVisionModel,
		Timeout:    cfg.Serving.Timeout,
		HTTPClient: servingHTTPClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to init vision chat client: %v", err)
	}

	gen, err := imagegen.New(imagegen.Config{
		APIKey:     cfg.Serving.APIKey,
		BaseURL:    cfg.Serving.BaseURL,
		Timeout:    cfg.Serving.Timeout,
		HTTPClient: servingHTTPClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to init image generation client: %v", err)
	}

	// Without its own key the transform endpoint reuses the serving OAuth
	// client; with one, the static bearer header must not be overwritten by
	// the OAuth transport.
	var transformHTTPClient *http.Client
	if cfg.Transform.APIKey == "" {
		transformHTTPClient = servingHTTPClient
	}
	img2img, err := mlserving.New(mlserving.Config{
		EndpointURL: cfg.Transform.EndpointURL,
		APIKey:      cfg.Transform.APIKey,
		Timeout:     cfg.Transform.Timeout,
		HTTPClient:  transformHTTPClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to init image-to-image client: %v", err)
	}

	// 4. Capability adapters
	analyzeAdapter := capability.NewAnalyzeAdapter(chat, catalog, logger)
	generateAdapter := capability.NewGenerateAdapter(gen, logger)
	transformAdapter := capability.NewTransformAdapter(img2img, logger)
	scoreAdapter := capability.NewScoreAdapter(chat, catalog, logger)

	// 5. Classifier
	var clf router.Classifier
	switch cfg.Router.Mode {
	case "heuristic":
		logger.Info(ctx, "Intent classifier: keyword heuristic")
		clf = classifier.NewHeuristic()
	default:
		routerModel := cfg.Router.Model
		if routerModel == "" {
			routerModel = catalog.DefaultRouterModel
		}
		logger.Infof(ctx, "Intent classifier: LLM (%s) with heuristic fallback", routerModel)
		clf = classifier.NewLLM(chat, routerModel, nil, logger)
	}

	// 6. Use case
	results := resultstore.New(cfg.Results.Size, cfg.Results.TTL)
	routerUC := usecase.New(
		logger,
		clf,
		analyzeAdapter,
		generateAdapter,
		transformAdapter,
		scoreAdapter,
		results,
		catalog,
	)

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RouterUC:        routerUC,
		Catalog:         catalog,
		APIToken:        cfg.Auth.APIToken,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to init HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}
}
