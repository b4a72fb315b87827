// Package schemas defines the fixed output contracts for schema-constrained
// generation, plus JSON Schema validation for locally produced artifacts.
package schemas

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// Article returns the response schema for a single processed article. This
// is the contract boundary between the system and the model: exactly five
// fields, all required except the per-section pair which is required per item.
func Article() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"importanceScore": {
				Type:        genai.TypeNumber,
				Description: "A score from 1-100 on how relevant this is to the research goal",
			},
			"importanceReasoning": {
				Type:        genai.TypeString,
				Description: "Detailed explanation of why this article matters for the research goal",
			},
			"sections": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"summary": {Type: genai.TypeString},
					},
					Required: []string{"title", "summary"},
				},
			},
		},
		Required: []string{"title", "importanceScore", "importanceReasoning", "sections"},
	}
}

// ArticleList returns the response schema for a batch search: an array of
// processed articles. The count appears only in the description; the model
// is asked for that many but the pipeline accepts whatever comes back.
func ArticleList(count int) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       Article(),
		Description: fmt.Sprintf("List of %d processed articles", count),
	}
}
