package model

// ModelType distinguishes vision (chat) models from diffusion models.
type ModelType string

const (
	ModelTypeVision   ModelType = "vision"
	ModelTypeDiffuser ModelType = "diffuser"
)

// ModelConfig describes one hosted model. The router treats IDs as opaque
// identifiers; only the serving layer interprets them.
type ModelConfig struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Type ModelType `json:"type"`
	// RequiresCacheControl marks models that need ephemeral cache_control
	// on image parts.
	RequiresCacheControl bool `json:"requires_cache_control"`
}

// Catalog is the closed set of models the gateway can address, plus the
// default model per role.
type Catalog struct {
	Models []ModelConfig `json:"models"`

	DefaultVisionModel string `json:"default_vision_model"`
	DefaultJudgeModel  string `json:"default_judge_model"`
	DefaultRouterModel string `json:"default_router_model"`
}

// DefaultCatalog returns the built-in model set used when config does not
// override it.
func DefaultCatalog() Catalog {
	return Catalog{
		Models: []ModelConfig{
			{ID: "gpt-5", Name: "GPT-5", Type: ModelTypeVision},
			{ID: "claude-sonnet-4", Name: "Claude Sonnet 4", Type: ModelTypeVision, RequiresCacheControl: true},
			{ID: "llama-4-maverick", Name: "Llama 4 Maverick", Type: ModelTypeVision, RequiresCacheControl: true},
			{ID: "shutterstock-imageai", Name: "Shutterstock ImageAI (Text-to-Image)", Type: ModelTypeDiffuser},
		},
		DefaultVisionModel: "claude-sonnet-4",
		DefaultJudgeModel:  "claude-sonnet-4",
		DefaultRouterModel: "claude-sonnet-4",
	}
}

// Lookup returns the config for id, or false when the model is unknown.
func (c Catalog) Lookup(id string) (ModelConfig, bool) {
	for _, m := range c.Models {
		if m.ID == id {
			return m, true
		}
	}
	return ModelConfig{}, false
}

// RequiresCacheControl reports whether the given model needs ephemeral
// cache_control on image parts. Unknown models default to false.
func (c Catalog) RequiresCacheControl(id string) bool {
	m, ok := c.Lookup(id)
	return ok && m.RequiresCacheControl
}

// VisionModels returns the vision-capable subset, preserving catalog order.
func (c Catalog) VisionModels() []ModelConfig {
	var out []ModelConfig
	for _, m := range c.Models {
		if m.Type == ModelTypeVision {
			out = append(out, m)
		}
	}
	return out
}
