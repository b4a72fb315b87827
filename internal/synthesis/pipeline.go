// Package synthesis implements the structured extraction and batch-synthesis
// pipeline: prompt construction, schema-constrained generation, and
// normalization of model output into processed articles.
package synthesis

import (
	"context"
	"strconv"
	"time"

	"github.com/rmoreira/researchflow/internal/identifier"
	"github.com/rmoreira/researchflow/internal/llm"
	"github.com/rmoreira/researchflow/internal/prompts"
	"github.com/rmoreira/researchflow/internal/schemas"
	"github.com/rmoreira/researchflow/internal/types"
)

// DefaultBatchSize is the number of results requested from a batch search.
// The model may return fewer or more; the pipeline passes the count through.
const DefaultBatchSize = 5

// Pipeline turns research goals and raw input into processed articles.
// Callers are expected to enforce the non-empty content/topic preconditions;
// the pipeline does not re-validate them.
type Pipeline struct {
	client    llm.Client
	batchSize int
	now       func() time.Time
	newID     func() string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBatchSize sets how many results a batch search requests.
func WithBatchSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithClock overrides the timestamp source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithIDSource overrides the id generator (used in tests).
func WithIDSource(newID func() string) Option {
	return func(p *Pipeline) { p.newID = newID }
}

// New creates a Pipeline backed by the given generation client.
func New(client llm.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		client:    client,
		batchSize: DefaultBatchSize,
		now:       time.Now,
		newID:     identifier.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessSingle analyzes one manually submitted article against the research
// goal and returns exactly one processed record. Provider failures propagate
// as *APICallError; unparsable model output does not fail and instead yields
// a record with defaulted content fields.
func (p *Pipeline) ProcessSingle(ctx context.Context, content string, goal types.ResearchGoal) (*types.ProcessedArticle, error) {
	prompt := prompts.Format(prompts.MustGet("synthesis.json", "analyze-article"), map[string]string{
		"Topic":       goal.Topic,
		"Description": goal.Description,
		"Content":     content,
	})

	text, err := p.client.GenerateJSON(ctx, llm.Request{
		Prompt: prompt,
		Schema: schemas.Article(),
		Tier:   llm.TierStandard,
	})
	if err != nil {
		return nil, &APICallError{Message: "article synthesis failed", Cause: err}
	}

	payload := decodeArticle(text)
	article := p.stamp(payload, goal, types.SourceManual)
	return &article, nil
}

// ProcessBatch asks the model to find relevant articles for the query using
// live web search and returns a full structured breakdown for each. An
// unparsable response yields an empty list; the returned count is not
// clamped to the requested batch size.
func (p *Pipeline) ProcessBatch(ctx context.Context, query string, goal types.ResearchGoal) ([]types.ProcessedArticle, error) {
	prompt := prompts.Format(prompts.MustGet("synthesis.json", "batch-search"), map[string]string{
		"Count":       strconv.Itoa(p.batchSize),
		"Query":       query,
		"Topic":       goal.Topic,
		"Description": goal.Description,
	})

	text, err := p.client.GenerateJSON(ctx, llm.Request{
		Prompt:          prompt,
		Schema:          schemas.ArticleList(p.batchSize),
		Tier:            llm.TierStandard,
		SearchGrounding: true,
	})
	if err != nil {
		return nil, &APICallError{Message: "batch search failed", Cause: err}
	}

	payloads := decodeArticleList(text)
	// One timestamp basis for the whole batch, same as single processing.
	processedAt := p.now().UnixMilli()
	articles := make([]types.ProcessedArticle, 0, len(payloads))
	for _, payload := range payloads {
		article := p.merge(payload, goal, types.SourceSearch, processedAt)
		articles = append(articles, article)
	}
	return articles, nil
}

func (p *Pipeline) stamp(payload articlePayload, goal types.ResearchGoal, source types.SourceType) types.ProcessedArticle {
	return p.merge(payload, goal, source, p.now().UnixMilli())
}

// merge combines model-produced fields with the identity fields owned by
// this system: a fresh id, the goal topic snapshot, the timestamp, and the
// source discriminator.
func (p *Pipeline) merge(payload articlePayload, goal types.ResearchGoal, source types.SourceType, processedAt int64) types.ProcessedArticle {
	return types.ProcessedArticle{
		ID:                  p.newID(),
		Title:               payload.Title,
		URL:                 payload.URL,
		ImportanceScore:     payload.ImportanceScore,
		ImportanceReasoning: payload.ImportanceReasoning,
		Sections:            payload.Sections,
		ResearchGoal:        goal.Topic,
		ProcessedAt:         processedAt,
		SourceType:          source,
	}
}
