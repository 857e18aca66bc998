package repository

import "errors"

// Erros específicos do repositório
var (
	ErrSessionNotSpecified = errors.New("sessão não especificada")
	ErrUnknownStore        = errors.New("tipo de armazenamento desconhecido")
)
