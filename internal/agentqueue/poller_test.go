package agentqueue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callboard/callboard/internal/backend"
)

// fakeSource scripts FetchQueue / UpdateAgent responses.
type fakeSource struct {
	mu         sync.Mutex
	snaps      []*backend.AgentQueueSnapshot
	fetchErr   error
	updateErr  error
	fetchCalls int
	updates    []backend.AgentUpdate
}

func (f *fakeSource) FetchQueue(ctx context.Context) (*backend.AgentQueueSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	snap := f.snaps[0]
	if len(f.snaps) > 1 {
		f.snaps = f.snaps[1:]
	}
	return snap, nil
}

func (f *fakeSource) UpdateAgent(ctx context.Context, upd backend.AgentUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, upd)
	return f.updateErr
}

func (f *fakeSource) setFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchErr = err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func snapshotOf(agents ...backend.AgentStatus) *backend.AgentQueueSnapshot {
	return &backend.AgentQueueSnapshot{
		Agents:  agents,
		Summary: backend.SummarizeAgents(agents),
	}
}

func TestRefresh_ReplacesSnapshotWholesale(t *testing.T) {
	src := &fakeSource{snaps: []*backend.AgentQueueSnapshot{
		snapshotOf(backend.AgentStatus{ID: "a1", Name: "Ana", Status: backend.AgentAvailable}),
	}}
	p := New(src, time.Second, quietLogger())

	p.Refresh(context.Background())

	snap := p.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Agents, 1)
	assert.True(t, snap.Summary.Consistent())
	assert.False(t, p.LastSuccess().IsZero())
}

func TestRefresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	src := &fakeSource{snaps: []*backend.AgentQueueSnapshot{
		snapshotOf(backend.AgentStatus{ID: "a1", Status: backend.AgentBusy}),
	}}
	p := New(src, time.Second, quietLogger())

	p.Refresh(context.Background())
	first := p.LastSuccess()

	src.setFetchErr(errors.New("backend down"))
	p.Refresh(context.Background())

	snap := p.Snapshot()
	require.NotNil(t, snap, "previous snapshot must survive a failed fetch")
	assert.Equal(t, "a1", snap.Agents[0].ID)
	assert.Equal(t, first, p.LastSuccess(), "failed fetch must not bump last success")
}

func TestSnapshot_NilBeforeFirstSuccess(t *testing.T) {
	src := &fakeSource{fetchErr: errors.New("down")}
	p := New(src, time.Second, quietLogger())

	p.Refresh(context.Background())
	assert.Nil(t, p.Snapshot())
}

func TestStartStop_PollsOnInterval(t *testing.T) {
	src := &fakeSource{snaps: []*backend.AgentQueueSnapshot{snapshotOf()}}
	p := New(src, 10*time.Millisecond, quietLogger())

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	src.mu.Lock()
	calls := src.fetchCalls
	src.mu.Unlock()
	assert.GreaterOrEqual(t, calls, 3, "immediate fetch plus interval ticks")

	// Stop is idempotent and must not hang.
	p.Stop()
}

func TestSetAgentStatus_AppliesWriteThenRefetches(t *testing.T) {
	src := &fakeSource{snaps: []*backend.AgentQueueSnapshot{
		snapshotOf(
			backend.AgentStatus{ID: "a1", Name: "Ana", Status: backend.AgentOffline},
			backend.AgentStatus{ID: "a2", Name: "Bo", Status: backend.AgentAvailable},
		),
	}}
	p := New(src, time.Second, quietLogger())
	p.Refresh(context.Background())

	err := p.SetAgentStatus(context.Background(), "a1", backend.AgentAvailable, true)
	require.NoError(t, err)

	require.Len(t, src.updates, 1)
	assert.Equal(t, backend.AgentUpdate{
		AgentID:       "a1",
		Status:        backend.AgentAvailable,
		SIPRegistered: true,
	}, src.updates[0])

	src.mu.Lock()
	calls := src.fetchCalls
	src.mu.Unlock()
	assert.Equal(t, 2, calls, "write must be followed by an unconditional refetch")
}

func TestSetAgentStatus_WriteFailureLeavesDisplayUntouched(t *testing.T) {
	src := &fakeSource{
		snaps: []*backend.AgentQueueSnapshot{
			snapshotOf(backend.AgentStatus{ID: "a1", Status: backend.AgentOffline}),
		},
		updateErr: errors.New("rejected"),
	}
	p := New(src, time.Second, quietLogger())
	p.Refresh(context.Background())

	err := p.SetAgentStatus(context.Background(), "a1", backend.AgentBusy, true)
	require.Error(t, err)

	snap := p.Snapshot()
	assert.Equal(t, backend.AgentOffline, snap.Agents[0].Status,
		"nothing is applied optimistically")
	src.mu.Lock()
	calls := src.fetchCalls
	src.mu.Unlock()
	assert.Equal(t, 1, calls, "no refetch after a failed write")
}

func TestSetAgentStatus_FailedRefetchShowsPatchedCopy(t *testing.T) {
	src := &fakeSource{snaps: []*backend.AgentQueueSnapshot{
		snapshotOf(
			backend.AgentStatus{ID: "a1", Status: backend.AgentOffline},
			backend.AgentStatus{ID: "a2", Status: backend.AgentOffline},
		),
	}}
	p := New(src, time.Second, quietLogger())
	p.Refresh(context.Background())

	// The refetch that follows the write fails; the locally patched copy
	// stays on display, summary re-derived.
	src.setFetchErr(errors.New("down"))
	err := p.SetAgentStatus(context.Background(), "a1", backend.AgentBusy, true)
	require.NoError(t, err, "the write itself succeeded")

	snap := p.Snapshot()
	assert.Equal(t, backend.AgentBusy, snap.Agents[0].Status)
	assert.True(t, snap.Agents[0].SIPRegistered)
	assert.Equal(t, backend.AgentOffline, snap.Agents[1].Status)
	assert.True(t, snap.Summary.Consistent())
	assert.Equal(t, 1, snap.Summary.Busy)
}
