package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"vision-gateway/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig

	// Vision Gateway specifics
	Serving   ServingConfig
	Transform TransformConfig
	Router    RouterConfig
	Models    ModelsConfig
	Results   ResultsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AuthConfig struct {
	// APIToken enables static bearer auth on the API when non-empty.
	APIToken string
}

// ServingConfig points at the OpenAI-compatible model-serving gateway used for
// chat completions and image generation.
type ServingConfig struct {
	BaseURL string
	APIKey  string
	// Timeout bounds each serving call; zero means the client defaults.
	Timeout time.Duration

	// OAuth enables client-credentials auth instead of a static key.
	OAuth OAuthConfig
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

func (o OAuthConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != "" && o.TokenURL != ""
}

// TransformConfig points at the image-to-image serving endpoint. With no
// APIKey, auth falls back to the serving OAuth client when that is enabled.
type TransformConfig struct {
	EndpointURL string
	APIKey      string
	Timeout     time.Duration
}

// RouterConfig selects the intent classification strategy.
type RouterConfig struct {
	// Mode is "llm" or "heuristic".
	Mode string
	// Model overrides the routing model id in llm mode.
	Model string
}

// ModelsConfig optionally overrides the built-in model catalog.
type ModelsConfig struct {
	Catalog []ModelEntry

	DefaultVisionModel string
	DefaultJudgeModel  string
	DefaultRouterModel string
}

type ModelEntry struct {
	ID                   string
	Name                 string
	Type                 string
	RequiresCacheControl bool
}

// Catalog materializes the configured model set, falling back to the built-in
// catalog when nothing is configured.
func (m ModelsConfig) ToCatalog() model.Catalog {
	catalog := model.DefaultCatalog()

	if len(m.Catalog) > 0 {
		catalog.Models = make([]model.ModelConfig, len(m.Catalog))
		for i, e := range m.Catalog {
			catalog.Models[i] = model.ModelConfig{
				ID:                   e.ID,
				Name:                 e.Name,
				Type:                 model.ModelType(e.Type),
				RequiresCacheControl: e.RequiresCacheControl,
			}
		}
	}
	if m.DefaultVisionModel != "" {
		catalog.DefaultVisionModel = m.DefaultVisionModel
	}
	if m.DefaultJudgeModel != "" {
		catalog.DefaultJudgeModel = m.DefaultJudgeModel
	}
	if m.DefaultRouterModel != "" {
		catalog.DefaultRouterModel = m.DefaultRouterModel
	}
	return catalog
}

type ResultsConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Auth.APIToken = expandEnvVar(viper.GetString("auth.api_token"))

	// Model serving gateway
	cfg.Serving.BaseURL = viper.GetString("serving.base_url")
	cfg.Serving.APIKey = expandEnvVar(viper.GetString("serving.api_key"))
	cfg.Serving.Timeout = viper.GetDuration("serving.timeout")
	cfg.Serving.OAuth.ClientID = expandEnvVar(viper.GetString("serving.oauth.client_id"))
	cfg.Serving.OAuth.ClientSecret = expandEnvVar(viper.GetString("serving.oauth.client_secret"))
	cfg.Serving.OAuth.TokenURL = viper.GetString("serving.oauth.token_url")
	if cfg.Serving.BaseURL == "" {
		return nil, fmt.Errorf("serving.base_url is required")
	}
	if cfg.Serving.APIKey == "" && !cfg.Serving.OAuth.Enabled() {
		return nil, fmt.Errorf("serving.api_key or serving.oauth is required")
	}

	// Image-to-image endpoint
	cfg.Transform.EndpointURL = viper.GetString("transform.endpoint_url")
	cfg.Transform.APIKey = expandEnvVar(viper.GetString("transform.api_key"))
	cfg.Transform.Timeout = viper.GetDuration("transform.timeout")
	if cfg.Transform.EndpointURL == "" {
		return nil, fmt.Errorf("transform.endpoint_url is required")
	}
	if cfg.Transform.APIKey == "" && !cfg.Serving.OAuth.Enabled() {
		return nil, fmt.Errorf("transform.api_key or serving.oauth is required")
	}

	// Router strategy
	cfg.Router.Mode = viper.GetString("router.mode")
	cfg.Router.Model = viper.GetString("router.model")
	if cfg.Router.Mode != "llm" && cfg.Router.Mode != "heuristic" {
		return nil, fmt.Errorf("router.mode must be llm or heuristic, got %q", cfg.Router.Mode)
	}

	// Model catalog overrides
	cfg.Models.DefaultVisionModel = viper.GetString("models.default_vision_model")
	cfg.Models.DefaultJudgeModel = viper.GetString("models.default_judge_model")
	cfg.Models.DefaultRouterModel = viper.GetString("models.default_router_model")
	if viper.IsSet("models.catalog") {
		raw := viper.Get("models.catalog")
		if entries, ok := raw.([]interface{}); ok {
			for _, e := range entries {
				if entryMap, ok := e.(map[string]interface{}); ok {
					cfg.Models.Catalog = append(cfg.Models.Catalog, ModelEntry{
						ID:                   getStringFromMap(entryMap, "id"),
						Name:                 getStringFromMap(entryMap, "name"),
						Type:                 getStringFromMap(entryMap, "type"),
						RequiresCacheControl: getBoolFromMap(entryMap, "requires_cache_control"),
					})
				}
			}
		}
	}

	// Result store
	cfg.Results.Size = viper.GetInt("results.size")
	cfg.Results.TTL = viper.GetDuration("results.ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("router.mode", "llm")
	viper.SetDefault("results.size", 256)
	viper.SetDefault("results.ttl", "30m")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if v := viper.GetString(envVar); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}
	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}
