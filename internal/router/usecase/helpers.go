package usecase

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// Patterns for images embedded directly in the prompt text. The raw pattern
// requires a long run so ordinary words never match. No boundary after the
// padding: "=" is a non-word character, so a trailing \b would capture padded
// payloads without their "=" and break decoding.
var (
	dataURLPattern   = regexp.MustCompile(`data:image/(\w+);base64,([A-Za-z0-9+/]+={0,2})`)
	rawBase64Pattern = regexp.MustCompile(`\b[A-Za-z0-9+/]{100,}={0,2}`)
)

// detectBase64InPrompt finds an embedded base64 image in the prompt, returning
// the encoded payload, the declared image type ("" for raw payloads), and
// whether anything was found.
func detectBase64InPrompt(prompt string) (encoded, imageType string, ok bool) {
	if m := dataURLPattern.FindStringSubmatch(prompt); m != nil {
		return m[2], m[1], true
	}
	if m := rawBase64Pattern.FindString(prompt); m != "" {
		return m, "", true
	}
	return "", "", false
}

func decodeBase64Image(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}

// stripEmbeddedImage removes the matched payload from the prompt so the
// remaining text can serve as the instruction.
func stripEmbeddedImage(prompt, encoded string) string {
	cleaned := dataURLPattern.ReplaceAllString(prompt, "")
	cleaned = strings.Replace(cleaned, encoded, "", 1)
	return strings.TrimSpace(cleaned)
}
