// Package agentqueue keeps a read-only copy of the backend's agent queue,
// refreshed on a fixed interval.
package agentqueue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/callboard/callboard/internal/backend"
)

// Source is the slice of the backend client the poller needs.
type Source interface {
	FetchQueue(ctx context.Context) (*backend.AgentQueueSnapshot, error)
	UpdateAgent(ctx context.Context, upd backend.AgentUpdate) error
}

// Poller refreshes the agent queue snapshot every interval. Fetch failures
// are logged and swallowed; the previous snapshot stays on display until a
// fetch succeeds. There is no retry, no backoff, and no generation guard:
// whichever response lands last wins.
type Poller struct {
	src      Source
	interval time.Duration
	logger   *slog.Logger

	mu          sync.RWMutex
	snap        *backend.AgentQueueSnapshot
	lastSuccess time.Time

	stop     context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a poller. The interval is typically 10 seconds.
func New(src Source, interval time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		src:      src,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start fetches once immediately, then keeps refreshing until Stop is
// called or the context ends.
func (p *Poller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.stop = cancel

	p.Refresh(ctx)

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Refresh(ctx)
			}
		}
	}()
}

// Stop cancels the poll loop and waits for it to exit.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		if p.stop != nil {
			p.stop()
			<-p.done
		}
	})
}

// Refresh performs one fetch. On failure the previous snapshot is kept.
func (p *Poller) Refresh(ctx context.Context) {
	snap, err := p.src.FetchQueue(ctx)
	if err != nil {
		p.logger.Warn("agent queue fetch failed, keeping previous snapshot", "error", err)
		return
	}

	p.mu.Lock()
	p.snap = snap
	p.lastSuccess = time.Now()
	p.mu.Unlock()
}

// Snapshot returns the most recent successful snapshot, or nil before the
// first success.
func (p *Poller) Snapshot() *backend.AgentQueueSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// LastSuccess returns when the snapshot was last replaced.
func (p *Poller) LastSuccess() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastSuccess
}

// SetAgentStatus writes a status / registration change for one agent.
// Nothing is applied optimistically: the displayed copy changes only after
// the write succeeds, and an unconditional refetch follows so the display
// converges on whatever the backend now holds. A failed refetch leaves the
// locally patched copy on screen until the next poll.
func (p *Poller) SetAgentStatus(ctx context.Context, agentID string, status backend.AgentState, sipRegistered bool) error {
	err := p.src.UpdateAgent(ctx, backend.AgentUpdate{
		AgentID:       agentID,
		Status:        status,
		SIPRegistered: sipRegistered,
	})
	if err != nil {
		return err
	}

	p.applyLocal(agentID, status, sipRegistered)
	p.Refresh(ctx)
	return nil
}

// applyLocal patches the stored snapshot with the acknowledged write and
// re-derives the summary counts.
func (p *Poller) applyLocal(agentID string, status backend.AgentState, sipRegistered bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap == nil {
		return
	}

	agents := make([]backend.AgentStatus, len(p.snap.Agents))
	copy(agents, p.snap.Agents)
	for i := range agents {
		if agents[i].ID == agentID {
			agents[i].Status = status
			agents[i].SIPRegistered = sipRegistered
			agents[i].LastUpdate = time.Now().UTC().Format(time.RFC3339)
		}
	}
	p.snap = &backend.AgentQueueSnapshot{
		Agents:  agents,
		Summary: backend.SummarizeAgents(agents),
	}
}
