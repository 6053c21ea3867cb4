package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxImageSize caps uploads at 10 MiB before base64 expansion.
const maxImageSize = 10 << 20

// processQueryReq binds the multipart routed-query form.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	req.Prompt = strings.TrimSpace(c.PostForm("prompt"))
	req.Model = c.PostForm("model")

	file, err := c.FormFile("image")
	if err == nil {
		req.ImageBytes, req.ImageType, err = readImageFile(file)
		if err != nil {
			return req, err
		}
	}
	return req, nil
}

// processManualReq binds the multipart manual-query form.
func (h *handler) processManualReq(c *gin.Context) (manualReq, error) {
	var req manualReq
	req.Prompt = strings.TrimSpace(c.PostForm("prompt"))
	req.Model = c.PostForm("model")

	file, err := c.FormFile("image")
	if err == nil {
		req.ImageBytes, req.ImageType, err = readImageFile(file)
		if err != nil {
			return req, err
		}
	}
	return req, nil
}

// processScoreReq binds the score request: result id from the path, optional
// judge model from the JSON body.
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	req.ResultID = c.Param("id")
	if req.ResultID == "" {
		return req, fmt.Errorf("result id is required")
	}

	// The body is optional.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// readImageFile loads the uploaded image and derives its type from the file
// extension. Unknown extensions default to jpeg.
func readImageFile(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > maxImageSize {
		return nil, "", fmt.Errorf("image exceeds the %d byte limit", maxImageSize)
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded image: %w", err)
	}

	return raw, imageTypeFromName(file.Filename), nil
}

func imageTypeFromName(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "jpeg"
	case "png":
		return "png"
	case "gif":
		return "gif"
	case "webp":
		return "webp"
	default:
		return "jpeg"
	}
}
