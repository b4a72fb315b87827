package synthesis

import (
	"encoding/json"
	"strings"

	"github.com/rmoreira/researchflow/internal/types"
)

// articlePayload is the dynamic shape returned by the model before the
// pipeline stamps identity fields onto it. Every field is optional: a
// response that fails to parse yields the zero payload, never an error.
type articlePayload struct {
	Title               string          `json:"title"`
	URL                 string          `json:"url"`
	ImportanceScore     float64         `json:"importanceScore"`
	ImportanceReasoning string          `json:"importanceReasoning"`
	Sections            []types.Section `json:"sections"`
}

// decodeArticle parses one article object from model output. Empty or
// unparsable text decodes as an empty payload, so the resulting record may
// be materially incomplete; downstream consumers default the missing fields.
func decodeArticle(text string) articlePayload {
	var payload articlePayload
	text = strings.TrimSpace(text)
	if text == "" {
		return payload
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return articlePayload{}
	}
	return payload
}

// decodeArticleList parses a batch response. Unparsable text yields an empty
// list, not an error. The returned count is whatever the model produced;
// nothing is enforced or truncated here.
func decodeArticleList(text string) []articlePayload {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var payloads []articlePayload
	if err := json.Unmarshal([]byte(text), &payloads); err != nil {
		return nil
	}
	return payloads
}
