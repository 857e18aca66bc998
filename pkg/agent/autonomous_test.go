package agent

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompleter devolve respostas em sequência e cancela após a última
type scriptedCompleter struct {
	mu      sync.Mutex
	replies []string
	err     error
	cancel  context.CancelFunc
	systems []string
}

func (s *scriptedCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.systems = append(s.systems, system)
	if len(s.replies) == 0 {
		if s.err != nil {
			return "", s.err
		}
		s.cancel()
		return "", ctx.Err()
	}

	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func TestAutonomousRunner_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	completer := &scriptedCompleter{replies: []string{"minted", "deployed"}, cancel: cancel}
	runner := NewAutonomousRunner(completer, time.Millisecond, "", nil)

	var got []string
	runner.OnReply = func(reply string) { got = append(got, reply) }

	err := runner.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"minted", "deployed"}, got)
	require.NotEmpty(t, completer.systems)
	assert.Contains(t, completer.systems[0], "funds on "+DefaultNetworkID)
}

func TestAutonomousRunner_StopsOnFirstError(t *testing.T) {
	boom := errors.New("provider down")
	completer := &scriptedCompleter{replies: []string{"first"}, err: boom, cancel: func() {}}
	runner := NewAutonomousRunner(completer, time.Millisecond, "base-mainnet", nil)

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrAgentUnavailable)
	assert.Len(t, completer.systems, 2)
}

func TestAutonomousRunner_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	completer := &scriptedCompleter{cancel: func() {}}
	runner := NewAutonomousRunner(completer, time.Hour, "", nil)

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestNewAutonomousRunner_Defaults(t *testing.T) {
	runner := NewAutonomousRunner(&scriptedCompleter{}, 0, "", nil)
	assert.Equal(t, DefaultAutonomousInterval, runner.interval)
	assert.Equal(t, DefaultNetworkID, runner.networkID)
}
