package intent

// Simulator mapeia texto livre para descrições canônicas de ações on-chain.
// Não há I/O: o resultado depende apenas do texto e do endereço.
type Simulator struct {
	handlers []Handler
}

// NewSimulator cria um simulador com os handlers padrão, em ordem de precedência
func NewSimulator() *Simulator {
	return NewSimulatorWithHandlers(BalanceHandler{}, TransactionHandler{}, FallbackHandler{})
}

// NewSimulatorWithHandlers cria um simulador com uma cadeia de handlers customizada
func NewSimulatorWithHandlers(handlers ...Handler) *Simulator {
	return &Simulator{handlers: handlers}
}

// Detect identifica a intenção de maior confiança na mensagem.
// Em caso de empate vence o handler registrado primeiro.
func (s *Simulator) Detect(message string) (*Intent, Handler) {
	var bestIntent *Intent
	var bestHandler Handler

	for _, handler := range s.handlers {
		if !handler.CanHandle(message) {
			continue
		}

		intent := handler.Extract(message)
		if intent == nil {
			continue
		}

		if bestIntent == nil || intent.Confidence > bestIntent.Confidence {
			bestIntent = intent
			bestHandler = handler
		}
	}

	return bestIntent, bestHandler
}

// Run executa a simulação para a mensagem e o contexto informados
func (s *Simulator) Run(message string, ctx ContextData) *ActionResult {
	intent, handler := s.Detect(message)
	if intent == nil || handler == nil {
		intent = FallbackHandler{}.Extract(message)
		return FallbackHandler{}.Execute(ctx, intent)
	}
	return handler.Execute(ctx, intent)
}

var defaultSimulator = NewSimulator()

// Classify retorna a categoria da mensagem usando a cadeia padrão
func Classify(message string) Category {
	intent, _ := defaultSimulator.Detect(message)
	if intent == nil {
		return CategoryOther
	}
	return intent.Category
}

// Simulate retorna a descrição simulada para a mensagem e o endereço
func Simulate(message, address string) string {
	return defaultSimulator.Run(message, ContextData{Address: address}).Message
}
