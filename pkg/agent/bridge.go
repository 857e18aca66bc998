package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/wallet-agent-chat/pkg/agent/intent"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
)

// Apology é a resposta exibida ao usuário quando o agente falha
const Apology = "Sorry, there was an error processing your request."

// ErrAgentUnavailable sinaliza que o LLM não pôde responder
var ErrAgentUnavailable = errors.New("agent unavailable")

// Completer envia um prompt a um LLM e devolve o texto gerado
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Bridge liga a mensagem do usuário ao LLM e ao simulador de intenções
type Bridge struct {
	completer Completer
	simulator *intent.Simulator
	logger    logger.Logger
}

// NewBridge cria uma nova instância da Bridge
func NewBridge(completer Completer, log logger.Logger) *Bridge {
	if log == nil {
		log = logger.NewNop()
	}
	return &Bridge{
		completer: completer,
		simulator: intent.NewSimulator(),
		logger:    log,
	}
}

// Respond envia a mensagem ao LLM uma única vez e anexa o resultado simulado.
// Qualquer falha é devolvida envolvendo ErrAgentUnavailable.
func (b *Bridge) Respond(ctx context.Context, message, address string) (string, error) {
	prompt := BuildPrompt(message, address)

	reply, err := b.completer.Complete(ctx, "", prompt)
	if err != nil {
		b.logger.Error("Agent response error", "error", err, "address", address)
		return "", fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
	}

	result := b.simulator.Run(message, intent.ContextData{Address: address})

	b.logger.Info("Agent response generated",
		"address", address,
		"intent", result.Category.String(),
		"reply_len", len(reply))

	return fmt.Sprintf("%s\n\nSimulation Result:\n%s", reply, result.Message), nil
}
