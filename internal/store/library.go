package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rmoreira/researchflow/internal/types"
)

// Persistence slot keys. Two flat string slots, no schema version, no
// migration path.
const (
	// ArticlesKey holds the article library as a JSON array
	ArticlesKey = "research_articles"
	// GoalKey holds the research goal as a JSON object
	GoalKey = "research_goal"
)

// Library mirrors the in-memory article collection and research goal to a
// KV store. Reads fall back silently to in-memory defaults; writes are
// synchronous, unconditional overwrites on every mutation.
type Library struct {
	kv KV
}

// NewLibrary creates a Library over the given store.
func NewLibrary(kv KV) *Library {
	return &Library{kv: kv}
}

// LoadArticles reads the persisted collection. An absent or unparsable slot
// yields an empty collection, never an error.
func (l *Library) LoadArticles(ctx context.Context) []types.ProcessedArticle {
	raw, ok, err := l.kv.Get(ctx, ArticlesKey)
	if err != nil || !ok {
		return nil
	}
	var articles []types.ProcessedArticle
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		return nil
	}
	return articles
}

// SaveArticles overwrites the persisted collection.
func (l *Library) SaveArticles(ctx context.Context, articles []types.ProcessedArticle) error {
	if articles == nil {
		articles = []types.ProcessedArticle{}
	}
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to marshal articles: %w", err)
	}
	return l.kv.Set(ctx, ArticlesKey, string(data))
}

// LoadGoal reads the persisted research goal. An absent or unparsable slot
// yields the empty goal, never an error.
func (l *Library) LoadGoal(ctx context.Context) types.ResearchGoal {
	raw, ok, err := l.kv.Get(ctx, GoalKey)
	if err != nil || !ok {
		return types.ResearchGoal{}
	}
	var goal types.ResearchGoal
	if err := json.Unmarshal([]byte(raw), &goal); err != nil {
		return types.ResearchGoal{}
	}
	return goal
}

// SaveGoal overwrites the persisted research goal.
func (l *Library) SaveGoal(ctx context.Context, goal types.ResearchGoal) error {
	data, err := json.Marshal(goal)
	if err != nil {
		return fmt.Errorf("failed to marshal goal: %w", err)
	}
	return l.kv.Set(ctx, GoalKey, string(data))
}
