package intent

import (
	"fmt"
	"strings"
)

// BalanceHandler simula consultas de saldo da carteira
type BalanceHandler struct{}

// CanHandle verifica se a mensagem menciona saldo
func (h BalanceHandler) CanHandle(message string) bool {
	return strings.Contains(strings.ToLower(message), "balance")
}

// Extract extrai a intenção de saldo
func (h BalanceHandler) Extract(message string) *Intent {
	return &Intent{Category: CategoryBalance, Confidence: 0.9, OriginalMessage: message}
}

// Execute gera a descrição simulada da consulta de saldo
func (h BalanceHandler) Execute(ctx ContextData, intent *Intent) *ActionResult {
	return &ActionResult{
		Category: CategoryBalance,
		Message:  fmt.Sprintf("Simulated balance check for %s", ctx.Address),
	}
}

// TransactionHandler simula transações e transferências
type TransactionHandler struct{}

// CanHandle verifica se a mensagem menciona transação ou transferência
func (h TransactionHandler) CanHandle(message string) bool {
	lowered := strings.ToLower(message)
	return strings.Contains(lowered, "transaction") || strings.Contains(lowered, "transfer")
}

// Extract extrai a intenção de transação
func (h TransactionHandler) Extract(message string) *Intent {
	return &Intent{Category: CategoryTransaction, Confidence: 0.8, OriginalMessage: message}
}

// Execute gera a descrição simulada da transação
func (h TransactionHandler) Execute(ctx ContextData, intent *Intent) *ActionResult {
	return &ActionResult{
		Category: CategoryTransaction,
		Message:  fmt.Sprintf("Simulated transaction from %s", ctx.Address),
	}
}

// FallbackHandler aceita qualquer mensagem e ecoa o texto original
type FallbackHandler struct{}

// CanHandle sempre retorna true
func (h FallbackHandler) CanHandle(message string) bool {
	return true
}

// Extract extrai a intenção genérica
func (h FallbackHandler) Extract(message string) *Intent {
	return &Intent{Category: CategoryOther, Confidence: 0.1, OriginalMessage: message}
}

// Execute ecoa a ação solicitada
func (h FallbackHandler) Execute(ctx ContextData, intent *Intent) *ActionResult {
	return &ActionResult{
		Category: CategoryOther,
		Message:  fmt.Sprintf("Simulated blockchain action: %s for %s", intent.OriginalMessage, ctx.Address),
	}
}
