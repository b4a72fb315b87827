// Package types provides type definitions for structured data used throughout the researchflow system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SourceType discriminates how an article entered the library.
type SourceType string

// Source type constants
const (
	// SourceManual marks articles submitted as raw text by the user
	SourceManual SourceType = "manual"
	// SourceSearch marks articles discovered by an agent web search
	SourceSearch SourceType = "search"
)

// ResearchGoal is the user-defined topic and free-text description used to
// bias relevance scoring. A non-empty Topic is required before any synthesis
// runs; Description may be empty.
type ResearchGoal struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// Section is one titled summary unit within a processed article.
type Section struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// ProcessedArticle is the structured synthesis produced for one analyzed
// source. Instances are created only by the synthesis pipeline; after
// creation they are immutable except for removal from the library.
//
// ImportanceScore is requested from the model in the 1-100 range but is
// stored as returned, unclamped. Consumers must tolerate missing or
// out-of-range values.
type ProcessedArticle struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	URL                 string     `json:"url,omitempty"`
	Content             string     `json:"content,omitempty"`
	ImportanceScore     float64    `json:"importanceScore"`
	ImportanceReasoning string     `json:"importanceReasoning"`
	Sections            []Section  `json:"sections"`
	ResearchGoal        string     `json:"researchGoal"`
	ProcessedAt         int64      `json:"processedAt"`
	SourceType          SourceType `json:"sourceType"`
}

// Prepend returns a new collection with the given articles placed before the
// existing ones. The library is ordered newest first, so fresh syntheses go
// to the front.
func Prepend(articles []ProcessedArticle, fresh ...ProcessedArticle) []ProcessedArticle {
	result := make([]ProcessedArticle, 0, len(fresh)+len(articles))
	result = append(result, fresh...)
	result = append(result, articles...)
	return result
}

// Remove returns the collection without the article matching id, preserving
// the order of the remaining entries. Unknown ids leave the collection
// unchanged.
func Remove(articles []ProcessedArticle, id string) []ProcessedArticle {
	result := make([]ProcessedArticle, 0, len(articles))
	for _, a := range articles {
		if a.ID != id {
			result = append(result, a)
		}
	}
	return result
}

// Find returns the article with the given id, or nil if absent.
func Find(articles []ProcessedArticle, id string) *ProcessedArticle {
	for i := range articles {
		if articles[i].ID == id {
			return &articles[i]
		}
	}
	return nil
}
