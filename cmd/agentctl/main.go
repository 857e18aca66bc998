package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/wallet-agent-chat/internal/config"
	"github.com/hugohenrick/wallet-agent-chat/pkg/agent"
	"github.com/hugohenrick/wallet-agent-chat/pkg/chat"
	"github.com/hugohenrick/wallet-agent-chat/pkg/llm"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd monta a CLI. completer nil usa o cliente LLM configurado pelo ambiente.
func newRootCmd(completer agent.Completer) *cobra.Command {
	var (
		cfg *config.Config
		log logger.Logger
	)

	root := &cobra.Command{
		Use:          "agentctl",
		Short:        "Conversa com o agente de blockchain pelo terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			// Carregar variáveis de ambiente
			cfg, err = config.Load()
			if err != nil {
				return err
			}

			log, err = logger.NewLogger(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return err
			}

			if completer == nil {
				completer = llm.NewClient(llm.Config{
					APIKey:  cfg.LLM.APIKey,
					BaseURL: cfg.LLM.BaseURL,
					Model:   cfg.LLM.Model,
					Timeout: cfg.LLM.Timeout,
				}, log)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	var address string
	ask := &cobra.Command{
		Use:   "ask [mensagem]",
		Short: "Envia uma mensagem ao agente e imprime a resposta",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if strings.TrimSpace(message) == "" {
				return chat.ErrEmptyMessage
			}

			reply, err := agent.NewBridge(completer, log).Respond(cmd.Context(), message, address)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), agent.Apology)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
	ask.Flags().StringVar(&address, "address", "", "endereço da carteira conectada")
	root.AddCommand(ask)

	var interval time.Duration
	autonomous := &cobra.Command{
		Use:   "autonomous",
		Short: "Executa o modo autônomo até Ctrl+C",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := agent.NewAutonomousRunner(completer, interval, cfg.Wallet.NetworkID, log)
			runner.OnReply = func(reply string) {
				printReply(cmd.OutOrStdout(), reply)
			}
			return runner.Run(cmd.Context())
		},
	}
	autonomous.Flags().DurationVar(&interval, "interval", agent.DefaultAutonomousInterval, "intervalo entre ações")
	root.AddCommand(autonomous)

	root.AddCommand(&cobra.Command{
		Use:   "prompts",
		Short: "Lista as perguntas sugeridas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, question := range chat.PresetQuestions {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i, question)
			}
			return nil
		},
	})

	return root
}

func printReply(w io.Writer, reply string) {
	fmt.Fprintln(w, reply)
	fmt.Fprintln(w, "-------------------")
}
