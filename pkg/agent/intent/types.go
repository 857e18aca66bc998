package intent

// Category representa a categoria grosseira inferida do texto do usuário
type Category int

const (
	// CategoryOther é a categoria de fallback
	CategoryOther Category = iota
	// CategoryBalance cobre consultas de saldo
	CategoryBalance
	// CategoryTransaction cobre transações e transferências
	CategoryTransaction
)

// String retorna o nome da categoria
func (c Category) String() string {
	switch c {
	case CategoryBalance:
		return "balance"
	case CategoryTransaction:
		return "transaction"
	default:
		return "other"
	}
}

// MarshalText permite serializar a categoria como texto em JSON
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Intent representa uma intenção detectada em uma mensagem do usuário
type Intent struct {
	// Categoria da intenção
	Category Category `json:"category"`

	// Confiança na identificação (0-1)
	Confidence float64 `json:"confidence"`

	// Mensagem original
	OriginalMessage string `json:"original_message"`
}

// ActionResult representa o resultado simulado de uma ação on-chain
type ActionResult struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// ContextData contém informações da carteira conectada
type ContextData struct {
	Address string
}

// Handler é a interface para os manipuladores de intenções específicas
type Handler interface {
	// Identifica se esta intenção é aplicável à mensagem
	CanHandle(message string) bool

	// Extrai a intenção da mensagem
	Extract(message string) *Intent

	// Executa a simulação associada à intenção
	Execute(ctx ContextData, intent *Intent) *ActionResult
}
