package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
)

const (
	// DefaultAutonomousInterval é o intervalo padrão entre pensamentos
	DefaultAutonomousInterval = 10 * time.Second

	// DefaultNetworkID é a rede usada quando nenhuma é configurada
	DefaultNetworkID = "base-sepolia"

	autonomousThought = "Be creative and do something interesting on the blockchain. " +
		"Choose an action or set of actions that highlights your abilities."
)

// AutonomousRunner envia periodicamente um pensamento livre ao agente
type AutonomousRunner struct {
	completer Completer
	interval  time.Duration
	networkID string
	logger    logger.Logger

	// OnReply é chamado com cada resposta recebida (opcional)
	OnReply func(reply string)
}

// NewAutonomousRunner cria um runner do modo autônomo
func NewAutonomousRunner(completer Completer, interval time.Duration, networkID string, log logger.Logger) *AutonomousRunner {
	if interval <= 0 {
		interval = DefaultAutonomousInterval
	}
	if networkID == "" {
		networkID = DefaultNetworkID
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &AutonomousRunner{
		completer: completer,
		interval:  interval,
		networkID: networkID,
		logger:    log,
	}
}

// Run executa o loop até o contexto ser cancelado ou a primeira falha.
// Cancelamento retorna nil; falhas do agente encerram o loop com erro.
func (r *AutonomousRunner) Run(ctx context.Context) error {
	r.logger.Info("Starting autonomous mode", "interval", r.interval.String(), "network_id", r.networkID)

	system := OnchainSystemPrompt(r.networkID)
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Autonomous mode stopped")
			return nil
		case <-timer.C:
		}

		reply, err := r.completer.Complete(ctx, system, autonomousThought)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				r.logger.Info("Autonomous mode stopped")
				return nil
			}
			r.logger.Error("Autonomous mode error", "error", err)
			return fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
		}

		r.logger.Info("Agent", "content", reply)
		if r.OnReply != nil {
			r.OnReply(reply)
		}

		timer.Reset(r.interval)
	}
}
