package research

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/domain"
)

type researcherFunc func(ctx context.Context, name string) (*domain.ResearchResult, error)

func (f researcherFunc) Research(ctx context.Context, name string) (*domain.ResearchResult, error) {
	return f(ctx, name)
}

func TestGatherReturnsOutcomePerName(t *testing.T) {
	g := NewGatherer(researcherFunc(func(_ context.Context, name string) (*domain.ResearchResult, error) {
		return &domain.ResearchResult{Name: name, Safety: domain.SafetyModerate, Confidence: 0.8}, nil
	}), 2, time.Second)

	outcomes := g.Gather(context.Background(), []string{"alpha", "beta", "gamma"})

	require.Len(t, outcomes, 3)
	for _, name := range []string{"alpha", "beta", "gamma"} {
		outcome, ok := outcomes[name]
		require.True(t, ok, name)
		require.False(t, outcome.Failed())
		assert.Equal(t, name, outcome.Result.Name)
	}
}

func TestGatherMapsErrorsToTypedFailures(t *testing.T) {
	g := NewGatherer(researcherFunc(func(_ context.Context, name string) (*domain.ResearchResult, error) {
		switch name {
		case "slow":
			return nil, context.DeadlineExceeded
		case "broken":
			return nil, NewFailure(domain.FailureMalformedResponse, errors.New("bad json"))
		default:
			return nil, errors.New("boom")
		}
	}), 2, time.Second)

	outcomes := g.Gather(context.Background(), []string{"slow", "broken", "other"})

	assert.Equal(t, domain.FailureTimeout, outcomes["slow"].Failure)
	assert.Equal(t, domain.FailureMalformedResponse, outcomes["broken"].Failure)
	assert.Equal(t, domain.FailureProviderError, outcomes["other"].Failure)
}

func TestGatherDeduplicatesNames(t *testing.T) {
	var calls int32
	g := NewGatherer(researcherFunc(func(_ context.Context, name string) (*domain.ResearchResult, error) {
		atomic.AddInt32(&calls, 1)
		return &domain.ResearchResult{Name: name, Confidence: 1}, nil
	}), 2, time.Second)

	outcomes := g.Gather(context.Background(), []string{"dup", "dup", "dup", "", "solo"})

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Len(t, outcomes, 2)
}

func TestGatherRespectsMaxInFlight(t *testing.T) {
	const limit = 2
	var inFlight, peak int32
	var mu sync.Mutex

	g := NewGatherer(researcherFunc(func(_ context.Context, name string) (*domain.ResearchResult, error) {
		cur := atomic.AddInt32(&inFlight, 1)
		mu.Lock()
		if cur > peak {
			peak = cur
		}
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return &domain.ResearchResult{Name: name, Confidence: 1}, nil
	}), limit, time.Second)

	g.Gather(context.Background(), []string{"a", "b", "c", "d", "e", "f"})

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int32(limit))
}

func TestGatherCanceledContextYieldsTimeouts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGatherer(researcherFunc(func(ctx context.Context, name string) (*domain.ResearchResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), 1, time.Second)

	outcomes := g.Gather(ctx, []string{"a", "b", "c"})

	require.Len(t, outcomes, 3)
	for name, outcome := range outcomes {
		assert.True(t, outcome.Failed(), name)
		assert.Equal(t, domain.FailureTimeout, outcome.Failure, name)
	}
}

func TestGatherEmptyNames(t *testing.T) {
	g := NewGatherer(researcherFunc(func(_ context.Context, _ string) (*domain.ResearchResult, error) {
		t.Fatal("researcher must not be called")
		return nil, nil
	}), 2, time.Second)

	assert.Empty(t, g.Gather(context.Background(), nil))
}
