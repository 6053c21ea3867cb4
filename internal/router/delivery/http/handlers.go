package http

import (
	"github.com/gin-gonic/gin"

	"vision-gateway/pkg/response"
)

// Query godoc
// @Summary     Route a user query
// @Description Classifies the prompt (and optional image) and dispatches it to the matching capability: generate, analyze, transform, or score.
// @Tags        Router
// @Accept      multipart/form-data
// @Produce     json
// @Param       prompt formData string false "User prompt"
// @Param       image  formData file   false "Attached image"
// @Param       model  formData string false "Vision model override (analysis only)"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/queries [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// Manual godoc
// @Summary     Query a specific vision model
// @Description Sends the prompt and image straight to the chosen vision model, bypassing intent classification.
// @Tags        Router
// @Accept      multipart/form-data
// @Produce     json
// @Param       prompt formData string false "Question about the image"
// @Param       image  formData file   true  "Image to analyze"
// @Param       model  formData string false "Vision model id (defaults to the catalog default)"
// @Success     200 {object} manualResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/queries/manual [POST]
func (h *handler) Manual(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processManualReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Manual(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Manual: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newManualResp(output))
}

// Score godoc
// @Summary     Score a generated result
// @Description Runs an Image-as-a-Judge evaluation of a previously generated image against its originating prompt.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       id   path string   true  "Result ID"
// @Param       body body scoreReq false "Optional judge model override"
// @Success     200 {object} scoreResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/results/{id}/score [POST]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Score(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Score: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScoreResp(output))
}

// Models godoc
// @Summary     List selectable vision models
// @Description Returns the vision-capable models for the manual-mode dropdown.
// @Tags        Router
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	response.OK(c, h.newModelsResp(h.catalog.VisionModels()))
}
