package prayer

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
)

// CacheKey derives the deterministic cache key for a generation request.
// Title, category and situation are lower-cased and trimmed, tone and length
// fall back to their defaults, and the field order of the serialized form is
// fixed so equivalent requests always hash identically.
func CacheKey(req GenerateRequest) string {
	tone := req.Tone
	if tone == "" {
		tone = ToneWarm
	}
	length := req.Length
	if length == "" {
		length = LengthShort
	}

	normalized := struct {
		Title     string `json:"title"`
		Category  string `json:"category"`
		Situation string `json:"situation"`
		Tone      string `json:"tone"`
		Length    string `json:"length"`
	}{
		Title:     strings.ToLower(strings.TrimSpace(req.Title)),
		Category:  strings.ToLower(strings.TrimSpace(req.Category)),
		Situation: strings.ToLower(strings.TrimSpace(req.Situation)),
		Tone:      tone,
		Length:    length,
	}

	data, _ := json.Marshal(normalized)
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}
