package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rmoreira/researchflow/internal/store"
	"github.com/rmoreira/researchflow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePipeline returns canned results and counts invocations.
type fakePipeline struct {
	singleResult *types.ProcessedArticle
	batchResults []types.ProcessedArticle
	err          error
	singleCalls  int
	batchCalls   int
}

func (f *fakePipeline) ProcessSingle(_ context.Context, _ string, goal types.ResearchGoal) (*types.ProcessedArticle, error) {
	f.singleCalls++
	if f.err != nil {
		return nil, f.err
	}
	result := *f.singleResult
	result.ResearchGoal = goal.Topic
	return &result, nil
}

func (f *fakePipeline) ProcessBatch(_ context.Context, _ string, goal types.ResearchGoal) ([]types.ProcessedArticle, error) {
	f.batchCalls++
	if f.err != nil {
		return nil, f.err
	}
	results := make([]types.ProcessedArticle, len(f.batchResults))
	for i, r := range f.batchResults {
		r.ResearchGoal = goal.Topic
		results[i] = r
	}
	return results, nil
}

func newTestApp(t *testing.T, pipeline Synthesizer) (*App, *store.Library) {
	t.Helper()
	library := store.NewLibrary(store.NewMemoryKV())
	return New(context.Background(), pipeline, library, io.Discard), library
}

func withGoal(t *testing.T, a *App) {
	t.Helper()
	require.NoError(t, a.SetGoal(context.Background(), types.ResearchGoal{
		Topic:       "Battery Chemistry",
		Description: "safety risks",
	}))
}

func TestSubmitManual(t *testing.T) {
	ctx := context.Background()
	pipeline := &fakePipeline{singleResult: &types.ProcessedArticle{
		ID:         "new-1",
		Title:      "Fresh",
		SourceType: types.SourceManual,
	}}
	a, library := newTestApp(t, pipeline)
	withGoal(t, a)

	article, err := a.SubmitManual(ctx, "some article text")
	require.NoError(t, err)
	require.NotNil(t, article)

	assert.Equal(t, 1, pipeline.singleCalls)
	assert.Equal(t, types.StatusIdle, a.Status())
	assert.Equal(t, "Battery Chemistry", article.ResearchGoal)

	// Prepended and persisted.
	require.Len(t, a.Articles(), 1)
	assert.Equal(t, "new-1", a.Articles()[0].ID)
	persisted := library.LoadArticles(ctx)
	require.Len(t, persisted, 1)
	assert.Equal(t, "new-1", persisted[0].ID)
}

func TestSubmitManual_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty content is a silent no-op", func(t *testing.T) {
		pipeline := &fakePipeline{singleResult: &types.ProcessedArticle{ID: "x"}}
		a, _ := newTestApp(t, pipeline)
		withGoal(t, a)

		article, err := a.SubmitManual(ctx, "   \n  ")
		assert.NoError(t, err)
		assert.Nil(t, article)
		assert.Zero(t, pipeline.singleCalls)
		assert.Equal(t, types.StatusIdle, a.Status())
	})

	t.Run("Missing goal topic is a silent no-op", func(t *testing.T) {
		pipeline := &fakePipeline{singleResult: &types.ProcessedArticle{ID: "x"}}
		a, _ := newTestApp(t, pipeline)

		article, err := a.SubmitManual(ctx, "content")
		assert.NoError(t, err)
		assert.Nil(t, article)
		assert.Zero(t, pipeline.singleCalls)
	})

	t.Run("Non-idle status blocks submission", func(t *testing.T) {
		pipeline := &fakePipeline{err: errors.New("boom")}
		a, _ := newTestApp(t, pipeline)
		withGoal(t, a)

		_, err := a.SubmitManual(ctx, "content")
		require.Error(t, err)
		require.Equal(t, types.StatusError, a.Status())

		// Still in Error: the precondition check suppresses the next call.
		article, err := a.SubmitManual(ctx, "more content")
		assert.NoError(t, err)
		assert.Nil(t, article)
		assert.Equal(t, 1, pipeline.singleCalls)
	})
}

func TestSubmitManual_ProviderFailure(t *testing.T) {
	ctx := context.Background()
	pipeline := &fakePipeline{err: errors.New("quota exceeded")}
	a, library := newTestApp(t, pipeline)
	withGoal(t, a)

	article, err := a.SubmitManual(ctx, "content")
	assert.Nil(t, article)
	require.Error(t, err)
	assert.Equal(t, types.StatusError, a.Status())
	assert.Empty(t, a.Articles())
	assert.Empty(t, library.LoadArticles(ctx))

	// Dismissing the error is the only recovery path.
	a.DismissError()
	assert.Equal(t, types.StatusIdle, a.Status())

	pipeline.err = nil
	pipeline.singleResult = &types.ProcessedArticle{ID: "after-recovery"}
	recovered, err := a.SubmitManual(ctx, "content")
	require.NoError(t, err)
	require.NotNil(t, recovered)
}

func TestSubmitBatch(t *testing.T) {
	ctx := context.Background()
	pipeline := &fakePipeline{batchResults: []types.ProcessedArticle{
		{ID: "s-1", SourceType: types.SourceSearch},
		{ID: "s-2", SourceType: types.SourceSearch},
	}}
	a, _ := newTestApp(t, pipeline)
	withGoal(t, a)

	results, err := a.SubmitBatch(ctx, "solid state")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, types.StatusIdle, a.Status())

	ids := []string{a.Articles()[0].ID, a.Articles()[1].ID}
	assert.Equal(t, []string{"s-1", "s-2"}, ids)
}

func TestSubmitBatch_EmptyResultIsNotAnError(t *testing.T) {
	ctx := context.Background()
	pipeline := &fakePipeline{batchResults: nil}
	a, _ := newTestApp(t, pipeline)
	withGoal(t, a)

	results, err := a.SubmitBatch(ctx, "query")
	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, types.StatusIdle, a.Status())
}

func TestSubmitBatch_NoPartialResultsOnFailure(t *testing.T) {
	ctx := context.Background()
	pipeline := &fakePipeline{err: errors.New("network down")}
	a, library := newTestApp(t, pipeline)
	withGoal(t, a)

	_, err := a.SubmitBatch(ctx, "query")
	require.Error(t, err)
	assert.Equal(t, types.StatusError, a.Status())
	assert.Empty(t, a.Articles())
	assert.Empty(t, library.LoadArticles(ctx))
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	pipeline := &fakePipeline{batchResults: []types.ProcessedArticle{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}}
	a, library := newTestApp(t, pipeline)
	withGoal(t, a)

	_, err := a.SubmitBatch(ctx, "query")
	require.NoError(t, err)
	require.Len(t, a.Articles(), 3)

	t.Run("Delete removes only the matching id and keeps order", func(t *testing.T) {
		a.Delete(ctx, "b")
		ids := make([]string, 0, 2)
		for _, art := range a.Articles() {
			ids = append(ids, art.ID)
		}
		assert.Equal(t, []string{"a", "c"}, ids)
		assert.Len(t, library.LoadArticles(ctx), 2)
	})

	t.Run("Delete of unknown id changes nothing", func(t *testing.T) {
		a.Delete(ctx, "missing")
		assert.Len(t, a.Articles(), 2)
	})

	t.Run("Clear empties the collection and persists empty", func(t *testing.T) {
		a.Clear(ctx)
		assert.Empty(t, a.Articles())
		assert.Empty(t, library.LoadArticles(ctx))
	})
}

func TestNew_LoadsPersistedState(t *testing.T) {
	ctx := context.Background()
	library := store.NewLibrary(store.NewMemoryKV())
	goal := types.ResearchGoal{Topic: "Grid Storage"}
	articles := []types.ProcessedArticle{{ID: fmt.Sprintf("persisted-%d", 1)}}
	require.NoError(t, library.SaveGoal(ctx, goal))
	require.NoError(t, library.SaveArticles(ctx, articles))

	a := New(ctx, &fakePipeline{}, library, io.Discard)
	assert.Equal(t, goal, a.Goal())
	assert.Equal(t, articles, a.Articles())
	assert.Equal(t, types.StatusIdle, a.Status())
}
