package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hugohenrick/wallet-agent-chat/pkg/llm"
)

const wallet = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeCompleter registra as chamadas e devolve respostas programadas
type fakeCompleter struct {
	reply   string
	err     error
	calls   int
	systems []string
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestBridge_Respond_CombinesReplyAndSimulation(t *testing.T) {
	completer := &fakeCompleter{reply: "You can check it on a block explorer."}
	bridge := NewBridge(completer, nil)

	got, err := bridge.Respond(context.Background(), "What's my wallet balance?", wallet)
	require.NoError(t, err)

	want := "You can check it on a block explorer.\n\nSimulation Result:\nSimulated balance check for " + wallet
	assert.Equal(t, want, got)
	assert.Equal(t, 1, completer.calls)
}

func TestBridge_Respond_PromptEmbedsAddressAndCapabilities(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	bridge := NewBridge(completer, nil)

	_, err := bridge.Respond(context.Background(), "Can you help me send some ETH?", wallet)
	require.NoError(t, err)

	require.Len(t, completer.prompts, 1)
	prompt := completer.prompts[0]
	assert.Contains(t, prompt, "Connected wallet: "+wallet)
	assert.Contains(t, prompt, "User message: Can you help me send some ETH?")
	for _, capability := range Capabilities {
		assert.Contains(t, prompt, "- "+capability)
	}
	assert.Empty(t, completer.systems[0])
}

func TestBridge_Respond_FallbackEchoesMessage(t *testing.T) {
	bridge := NewBridge(&fakeCompleter{reply: "Gas is a fee."}, nil)

	got, err := bridge.Respond(context.Background(), "Explain how gas fees work", wallet)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "Simulated blockchain action: Explain how gas fees work for "+wallet))
}

func TestBridge_Respond_Failure(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{name: "missing key", cause: llm.ErrMissingAPIKey},
		{name: "request failed", cause: llm.ErrRequestFailed},
		{name: "arbitrary", cause: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{err: tt.cause}
			bridge := NewBridge(completer, nil)

			got, err := bridge.Respond(context.Background(), "transfer 1 eth", wallet)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, ErrAgentUnavailable)
			assert.ErrorIs(t, err, tt.cause)
			assert.Equal(t, 1, completer.calls, "no retries")
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("hello", "")
	assert.True(t, strings.HasPrefix(prompt, "You are a blockchain interaction specialist"))
	assert.Contains(t, prompt, "Connected wallet: \n")
	assert.True(t, strings.HasSuffix(prompt, "Please provide a clear explanation of the required blockchain actions."))
}

func TestOnchainSystemPrompt(t *testing.T) {
	assert.Contains(t, OnchainSystemPrompt("base-mainnet"), "funds on base-mainnet")
}
