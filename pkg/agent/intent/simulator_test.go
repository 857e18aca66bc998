package intent

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const address = "0x1111111111111111111111111111111111111111"

func TestSimulate(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		category Category
		want     string
	}{
		{
			name:     "balance lower case",
			message:  "what's my balance?",
			category: CategoryBalance,
			want:     "Simulated balance check for " + address,
		},
		{
			name:     "balance any case",
			message:  "Show me my BaLaNcE please",
			category: CategoryBalance,
			want:     "Simulated balance check for " + address,
		},
		{
			name:     "balance wins over transfer",
			message:  "transfer my whole balance",
			category: CategoryBalance,
			want:     "Simulated balance check for " + address,
		},
		{
			name:     "transaction",
			message:  "Explain this Transaction",
			category: CategoryTransaction,
			want:     "Simulated transaction from " + address,
		},
		{
			name:     "transfer",
			message:  "Can you TRANSFER 1 ETH to bob?",
			category: CategoryTransaction,
			want:     "Simulated transaction from " + address,
		},
		{
			name:     "fallback echoes original text",
			message:  "Explain how gas fees work",
			category: CategoryOther,
			want:     "Simulated blockchain action: Explain how gas fees work for " + address,
		},
		{
			name:     "fallback keeps original casing",
			message:  "Mint An NFT",
			category: CategoryOther,
			want:     "Simulated blockchain action: Mint An NFT for " + address,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Simulate(tt.message, address))
			assert.Equal(t, tt.category, Classify(tt.message))
		})
	}
}

func TestSimulate_BalanceContainsAddress(t *testing.T) {
	for _, addr := range []string{address, "", "not-an-address"} {
		got := Simulate("balance", addr)
		assert.True(t, strings.HasPrefix(got, "Simulated balance check for "))
		assert.True(t, strings.HasSuffix(got, addr))
	}
}

func TestSimulator_Detect(t *testing.T) {
	s := NewSimulator()

	intent, handler := s.Detect("send a transfer")
	require.NotNil(t, intent)
	require.NotNil(t, handler)
	assert.Equal(t, CategoryTransaction, intent.Category)
	assert.Equal(t, "send a transfer", intent.OriginalMessage)
	assert.IsType(t, TransactionHandler{}, handler)
}

func TestSimulator_EmptyChainFallsBack(t *testing.T) {
	s := NewSimulatorWithHandlers()

	result := s.Run("anything", ContextData{Address: address})
	assert.Equal(t, CategoryOther, result.Category)
	assert.Equal(t, "Simulated blockchain action: anything for "+address, result.Message)
}

func TestCategory_JSON(t *testing.T) {
	b, err := json.Marshal(ActionResult{Category: CategoryTransaction, Message: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"transaction","message":"x"}`, string(b))

	assert.Equal(t, "balance", CategoryBalance.String())
	assert.Equal(t, "other", Category(42).String())
}
