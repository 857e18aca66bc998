package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hugohenrick/wallet-agent-chat/pkg/agent"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
)

const (
	onchainRequest = "Executing onchain action via Fleek Function..."
	onchainReply   = "This is where the Fleek Function output will appear. In the full version, this would show real onchain actions."
)

// PresetQuestions são as sugestões exibidas ao usuário
var PresetQuestions = []string{
	"What's my wallet balance?",
	"Can you help me send some ETH?",
	"Explain how gas fees work",
}

// Erros do serviço de chat
var (
	ErrEmptyMessage    = errors.New("mensagem vazia")
	ErrRequestInFlight = errors.New("já existe uma requisição em andamento para esta sessão")
	ErrUnknownPreset   = errors.New("pergunta sugerida inexistente")
)

// Responder produz a resposta do assistente para uma mensagem
type Responder interface {
	Respond(ctx context.Context, message, address string) (string, error)
}

// Exchange é o par de mensagens produzido por um envio
type Exchange struct {
	User      Message `json:"user"`
	Assistant Message `json:"assistant"`
	// Failed indica que o agente falhou e a resposta é a mensagem de desculpas
	Failed bool `json:"failed"`
}

// Service coordena o histórico de uma conversa com o agente
type Service struct {
	repository Repository
	responder  Responder
	logger     logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService cria uma nova instância do serviço de chat
func NewService(repository Repository, responder Responder, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repository: repository,
		responder:  responder,
		logger:     log,
		inFlight:   make(map[string]struct{}),
	}
}

// Submit registra a mensagem do usuário e a resposta do assistente.
// Uma falha do agente não é erro: a resposta vira Apology e o histórico cresce em 2.
func (s *Service) Submit(ctx context.Context, sessionID, address, text string) (*Exchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	if !s.acquire(sessionID) {
		return nil, ErrRequestInFlight
	}
	defer s.release(sessionID)

	exchange := &Exchange{User: NewMessage(sessionID, RoleUser, text)}

	// O agente e a gravação não são cancelados se o cliente desistir da requisição
	detached := context.WithoutCancel(ctx)

	reply, err := s.responder.Respond(detached, text, address)
	if err != nil {
		s.logger.Error("Chat error details", "error", err, "session_id", sessionID)
		reply = agent.Apology
		exchange.Failed = true
	}

	exchange.Assistant = NewMessage(sessionID, RoleAssistant, reply)

	// As duas mensagens são gravadas juntas: o histórico cresce em 2 ou não cresce
	if err := s.repository.Append(detached, sessionID, exchange.User, exchange.Assistant); err != nil {
		return nil, fmt.Errorf("erro ao salvar mensagens: %w", err)
	}

	return exchange, nil
}

// SubmitPreset envia uma das perguntas sugeridas
func (s *Service) SubmitPreset(ctx context.Context, sessionID, address string, index int) (*Exchange, error) {
	if index < 0 || index >= len(PresetQuestions) {
		return nil, ErrUnknownPreset
	}
	return s.Submit(ctx, sessionID, address, PresetQuestions[index])
}

// RunOnchainPlaceholder registra a execução simulada de uma função on-chain
func (s *Service) RunOnchainPlaceholder(ctx context.Context, sessionID string) (*Exchange, error) {
	if !s.acquire(sessionID) {
		return nil, ErrRequestInFlight
	}
	defer s.release(sessionID)

	exchange := &Exchange{
		User:      NewMessage(sessionID, RoleUser, onchainRequest),
		Assistant: NewMessage(sessionID, RoleAssistant, onchainReply),
	}

	if err := s.repository.Append(ctx, sessionID, exchange.User, exchange.Assistant); err != nil {
		return nil, fmt.Errorf("erro ao salvar execução on-chain: %w", err)
	}

	return exchange, nil
}

// History retorna o histórico da sessão em ordem cronológica
func (s *Service) History(ctx context.Context, sessionID string) ([]Message, error) {
	messages, err := s.repository.History(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	if messages == nil {
		messages = []Message{}
	}
	return messages, nil
}

// Reset descarta o histórico da sessão. Não é permitido com um envio em andamento.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	if !s.acquire(sessionID) {
		return ErrRequestInFlight
	}
	defer s.release(sessionID)

	if err := s.repository.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}
