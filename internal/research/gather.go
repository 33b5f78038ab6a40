package research

import (
	"context"
	"log"
	"sync"
	"time"

	"labelscan/internal/domain"
	"labelscan/internal/port"
)

const (
	defaultMaxInFlight = 4
	defaultCallTimeout = 20 * time.Second
)

// Gatherer fans research calls out over a bounded number of goroutines and
// collects every outcome before returning. One Gatherer serves all requests;
// it holds no per-request state.
type Gatherer struct {
	researcher  port.Researcher
	maxInFlight int
	callTimeout time.Duration
}

// NewGatherer creates a Gatherer. Non-positive limits fall back to defaults.
func NewGatherer(researcher port.Researcher, maxInFlight int, callTimeout time.Duration) *Gatherer {
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &Gatherer{
		researcher:  researcher,
		maxInFlight: maxInFlight,
		callTimeout: callTimeout,
	}
}

// Gather researches every name and returns an outcome per name, keyed by the
// name as given. Duplicate names are requested once. Each call carries its
// own timeout; a canceled ctx stops pending calls and records them as
// timeouts. Gather never returns an error: failures become typed outcomes.
func (g *Gatherer) Gather(ctx context.Context, names []string) map[string]domain.ResearchOutcome {
	outcomes := make(map[string]domain.ResearchOutcome, len(names))
	if len(names) == 0 {
		return outcomes
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, g.maxInFlight)
	)

	record := func(name string, outcome domain.ResearchOutcome) {
		mu.Lock()
		outcomes[name] = outcome
		mu.Unlock()
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				record(name, domain.ResearchOutcome{Failure: domain.FailureTimeout})
				return
			}

			callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
			defer cancel()

			result, err := g.researcher.Research(callCtx, name)
			if err != nil {
				reason := Classify(err)
				log.Printf("research.Gatherer: %q failed (%s): %v", name, reason, err)
				record(name, domain.ResearchOutcome{Failure: reason})
				return
			}
			record(name, domain.ResearchOutcome{Result: result})
		}(name)
	}

	wg.Wait()
	return outcomes
}
