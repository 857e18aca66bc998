package agent

import (
	"fmt"
	"strings"
)

// Capabilities lista o que o assistente declara saber fazer
var Capabilities = []string{
	"Check wallet balances",
	"Help with transactions",
	"Provide blockchain information",
	"Explain crypto concepts",
}

// BuildPrompt monta o prompt enviado ao LLM a cada turno
func BuildPrompt(message, address string) string {
	var b strings.Builder

	b.WriteString("You are a blockchain interaction specialist with these capabilities:\n")
	for _, capability := range Capabilities {
		b.WriteString("- ")
		b.WriteString(capability)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Connected wallet: %s\n", address)
	fmt.Fprintf(&b, "User message: %s\n", message)
	b.WriteString("\nPlease provide a clear explanation of the required blockchain actions.")

	return b.String()
}

// OnchainSystemPrompt é o prompt de sistema do modo autônomo
func OnchainSystemPrompt(networkID string) string {
	return fmt.Sprintf(`You are a helpful agent that can interact onchain using the Coinbase Developer Platform Agentkit.
You are empowered to interact onchain using your tools.
If you need funds on %s, you can request them from the faucet.
Otherwise, provide wallet details and request funds from the user.
If a requested action isn't available with current tools, indicate this and direct users to docs.cdp.coinbase.com.
Be concise and helpful. Only explain tools when explicitly asked.`, networkID)
}
