// Package app coordinates user actions against the synthesis pipeline and
// the persistence adapter, tracking the single process-wide processing status.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rmoreira/researchflow/internal/store"
	"github.com/rmoreira/researchflow/internal/synthesis"
	"github.com/rmoreira/researchflow/internal/types"
)

// Synthesizer is the slice of the pipeline the orchestration layer needs.
type Synthesizer interface {
	ProcessSingle(ctx context.Context, content string, goal types.ResearchGoal) (*types.ProcessedArticle, error)
	ProcessBatch(ctx context.Context, query string, goal types.ResearchGoal) ([]types.ProcessedArticle, error)
}

var _ Synthesizer = (*synthesis.Pipeline)(nil)

// App holds the application state: the single status value, the research
// goal, and the article collection, mirrored to the library store on every
// mutation. All work is single-threaded and event-driven; only one pipeline
// invocation may be in flight at a time.
type App struct {
	pipeline Synthesizer
	library  *store.Library
	logOut   io.Writer

	status   types.ProcessingStatus
	goal     types.ResearchGoal
	articles []types.ProcessedArticle
}

// New creates an App and loads persisted state. Missing or unparsable
// persisted slots fall back to in-memory defaults; startup never fails on
// persistence reads.
func New(ctx context.Context, pipeline Synthesizer, library *store.Library, logOut io.Writer) *App {
	return &App{
		pipeline: pipeline,
		library:  library,
		logOut:   logOut,
		status:   types.StatusIdle,
		goal:     library.LoadGoal(ctx),
		articles: library.LoadArticles(ctx),
	}
}

// Status returns the current processing status.
func (a *App) Status() types.ProcessingStatus {
	return a.status
}

// Goal returns the current research goal.
func (a *App) Goal() types.ResearchGoal {
	return a.goal
}

// Articles returns the current collection, newest first.
func (a *App) Articles() []types.ProcessedArticle {
	return a.articles
}

// SetGoal replaces the research goal and persists it. Changing the goal does
// not retroactively alter already-processed articles.
func (a *App) SetGoal(ctx context.Context, goal types.ResearchGoal) error {
	a.goal = goal
	return a.library.SaveGoal(ctx, goal)
}

// SubmitManual runs a single-article synthesis. It is a silent no-op when
// the content or goal topic is empty, or when the status is not Idle. On
// success the result is prepended to the collection and persisted; on
// provider failure the status becomes Error and the error is returned.
func (a *App) SubmitManual(ctx context.Context, content string) (*types.ProcessedArticle, error) {
	if strings.TrimSpace(content) == "" || a.goal.Topic == "" {
		return nil, nil
	}
	if !a.transition(types.StatusProcessing) {
		return nil, nil
	}

	article, err := a.pipeline.ProcessSingle(ctx, content, a.goal)
	if err != nil {
		a.fail(err)
		return nil, err
	}

	a.articles = types.Prepend(a.articles, *article)
	a.persistArticles(ctx)
	a.transition(types.StatusIdle)
	return article, nil
}

// SubmitBatch runs a search-grounded batch synthesis. It is a silent no-op
// when the query or goal topic is empty, or when the status is not Idle. No
// partial results are kept from a failed batch call.
func (a *App) SubmitBatch(ctx context.Context, query string) ([]types.ProcessedArticle, error) {
	if strings.TrimSpace(query) == "" || a.goal.Topic == "" {
		return nil, nil
	}
	if !a.transition(types.StatusSearching) {
		return nil, nil
	}

	results, err := a.pipeline.ProcessBatch(ctx, query, a.goal)
	if err != nil {
		a.fail(err)
		return nil, err
	}

	a.articles = types.Prepend(a.articles, results...)
	a.persistArticles(ctx)
	a.transition(types.StatusIdle)
	return results, nil
}

// Delete removes one article by id and persists the collection. Deletion is
// not gated by status.
func (a *App) Delete(ctx context.Context, id string) {
	a.articles = types.Remove(a.articles, id)
	a.persistArticles(ctx)
}

// Clear empties the collection and persists it as empty. Clearing is not
// gated by status.
func (a *App) Clear(ctx context.Context) {
	a.articles = nil
	a.persistArticles(ctx)
}

// DismissError is the only user-driven recovery action: it returns the
// system from Error to Idle so a new submission may start.
func (a *App) DismissError() {
	a.transition(types.StatusIdle)
}

// transition applies a status change if the state machine permits it.
func (a *App) transition(to types.ProcessingStatus) bool {
	if !types.ValidTransition(a.status, to) {
		return false
	}
	a.status = to
	return true
}

func (a *App) fail(err error) {
	a.transition(types.StatusError)
	if a.logOut != nil {
		fmt.Fprintf(a.logOut, "Error: synthesis failed: %v\n", err)
	}
}

func (a *App) persistArticles(ctx context.Context) {
	if err := a.library.SaveArticles(ctx, a.articles); err != nil && a.logOut != nil {
		fmt.Fprintf(a.logOut, "Warning: failed to persist library: %v\n", err)
	}
}
