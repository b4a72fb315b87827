package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmoreira/researchflow/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintGoal(t *testing.T) {
	t.Run("Set goal", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintGoal(types.ResearchGoal{
			Topic:       "Battery Chemistry",
			Description: "safety risks",
		})
		out := buf.String()
		assert.Contains(t, out, "RESEARCH GOAL")
		assert.Contains(t, out, "Battery Chemistry")
		assert.Contains(t, out, "safety risks")
	})

	t.Run("Unset goal", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintGoal(types.ResearchGoal{})
		assert.Contains(t, buf.String(), "(not set)")
	})
}

func TestPrintArticle(t *testing.T) {
	t.Run("Nil article prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintArticle(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("Full article", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintArticle(&types.ProcessedArticle{
			ID:                  "id-1",
			Title:               "Solid State Advances",
			ImportanceScore:     87,
			ImportanceReasoning: "Directly addresses the goal.",
			SourceType:          types.SourceSearch,
			ResearchGoal:        "Battery Chemistry",
			Sections: []types.Section{
				{Title: "Background", Summary: "..."},
				{Title: "Findings", Summary: "..."},
			},
		})
		out := buf.String()
		assert.Contains(t, out, "PROCESSED ARTICLE")
		assert.Contains(t, out, "Solid State Advances")
		assert.Contains(t, out, "87/100")
		assert.Contains(t, out, "Why it matters:")
		assert.Contains(t, out, "1. Background")
		assert.Contains(t, out, "2. Findings")
		assert.NotContains(t, out, "more")
	})

	t.Run("Section list is capped", func(t *testing.T) {
		sections := make([]types.Section, 8)
		for i := range sections {
			sections[i] = types.Section{Title: "Section"}
		}
		var buf bytes.Buffer
		NewPrinter(&buf).PrintArticle(&types.ProcessedArticle{Title: "T", Sections: sections})
		assert.Contains(t, buf.String(), "... and 3 more")
	})

	t.Run("Untitled article gets a placeholder", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintArticle(&types.ProcessedArticle{})
		assert.Contains(t, buf.String(), "(untitled)")
	})
}

func TestPrintLibrary(t *testing.T) {
	t.Run("Empty library", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintLibrary(nil)
		assert.Contains(t, buf.String(), "Library is empty")
	})

	t.Run("Listing", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintLibrary([]types.ProcessedArticle{
			{ID: "a-1", Title: "Newest", ImportanceScore: 90, SourceType: types.SourceManual, ProcessedAt: 1700000000000},
			{ID: "a-2", Title: "Older", ImportanceScore: 40, SourceType: types.SourceSearch, ProcessedAt: 1600000000000},
		})
		out := buf.String()
		assert.Contains(t, out, "2 article(s)")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Contains(t, lines[len(lines)-2], "Newest")
		assert.Contains(t, lines[len(lines)-1], "Older")
	})
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGoal(types.ResearchGoal{
		Topic: strings.Repeat("very long topic ", 10),
	})
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
